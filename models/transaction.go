package models

import "time"

// Order is a transaction header. This backend only reads it; checkout is
// owned by the storefront service.
type Order struct {
	ID        uint      `gorm:"column:id_order;primaryKey;autoIncrement" json:"id_order"`
	UserID    uint      `gorm:"column:id_user" json:"id_user"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "transaction_history"
}

// OrderProduct is a single order line.
type OrderProduct struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint `gorm:"column:id_order;index" json:"id_order"`
	ProductID uint `gorm:"column:id_product" json:"id_product"`
	Quantity  int  `json:"quantity"`
}

func (OrderProduct) TableName() string {
	return "order_product"
}

// TransactionRecord is the read-only projection returned by the transaction
// history endpoint: header columns joined with the ordered product and its
// current catalog price.
type TransactionRecord struct {
	OrderID     uint      `gorm:"column:id_order" json:"id_order"`
	UserID      uint      `gorm:"column:id_user" json:"id_user"`
	Total       float64   `json:"total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ProductID   uint      `gorm:"column:id_product" json:"id_product"`
	Quantity    int       `json:"quantity"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
}
