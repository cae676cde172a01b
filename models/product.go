package models

import "time"

// Product is a catalog item. Image always holds a reference after creation,
// falling back to the configured default when no file was uploaded. Version
// backs the conditional UPDATE that guards fetch-then-merge updates against
// lost writes.
type Product struct {
	ID          uint      `gorm:"column:id_product;primaryKey;autoIncrement" json:"id_product"`
	ProductName string    `gorm:"not null" json:"product_name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `gorm:"not null" json:"image"`
	CategoryID  uint      `gorm:"column:id_category" json:"id_category"`
	Version     uint      `gorm:"not null;default:1" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (Product) TableName() string {
	return "tbl_products"
}
