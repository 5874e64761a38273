package models

import (
	"time"
)

const OrderStatusPending = "Pending"

// Order is stored alongside customers but no route reads or writes it.
// Deleting a customer leaves its orders in place.
type Order struct {
	ID           uint       `gorm:"column:id;primaryKey" json:"id"`
	CustomerID   uint       `gorm:"column:customerId;not null;index" json:"customerId"`
	Customer     *Customer  `gorm:"foreignKey:CustomerID;references:ID" json:"-"`
	OrderDate    time.Time  `gorm:"column:orderDate;autoCreateTime" json:"orderDate"`
	GarmentType  string     `gorm:"column:garmentType;type:text" json:"garmentType"`
	Fabric       *string    `gorm:"column:fabric;type:text" json:"fabric"`
	Color        *string    `gorm:"column:color;type:text" json:"color"`
	Quantity     int        `gorm:"column:quantity;default:1" json:"quantity"`
	Price        *float64   `gorm:"column:price" json:"price"`
	Status       string     `gorm:"column:status;type:varchar(20);default:'Pending'" json:"status"`
	DeliveryDate *time.Time `gorm:"column:deliveryDate" json:"deliveryDate"`
	Notes        *string    `gorm:"column:notes;type:text" json:"notes"`
}

func (Order) TableName() string {
	return "orders"
}
