package models

import "time"

// Category groups products. Categorys is the secondary descriptive field the
// storefront shows under the category name.
type Category struct {
	ID           uint      `gorm:"column:id_category;primaryKey;autoIncrement" json:"id_category"`
	CategoryName string    `gorm:"not null" json:"category_name"`
	Categorys    string    `json:"categorys"`
	Image        string    `json:"image"`
	Version      uint      `gorm:"not null;default:1" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (Category) TableName() string {
	return "tbl_categorys"
}
