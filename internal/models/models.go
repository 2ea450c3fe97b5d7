package models

import (
	"time"
)

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Category    string    `gorm:"not null"                 json:"category"`
	Stock       int       `gorm:"not null;default:0"       json:"stock"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AdminUser struct {
	ID           uint      `gorm:"primaryKey"      json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null"        json:"-"`
	DisplayName  string    `gorm:"not null"        json:"display_name"`
	AvatarPath   string    `json:"avatar_path"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Status    string      `gorm:"not null;default:paid"    json:"status"`
	Total     float64     `gorm:"not null;default:0"       json:"total"`
	OrderDate time.Time   `gorm:"not null;index"           json:"order_date"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"                 json:"id"`
	OrderID   uint    `gorm:"index;not null"             json:"order_id"`
	ProductID uint    `gorm:"index;not null"             json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity>0" json:"quantity"`
	UnitPrice float64 `gorm:"not null"                   json:"unit_price"`
}

type ActivityLog struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActionType  string    `gorm:"not null"                 json:"action_type"`
	Description string    `gorm:"not null"                 json:"description"`
	CreatedAt   time.Time `gorm:"index"                    json:"created_at"`
}
