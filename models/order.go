package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TravelOrder оформленный заказ по завершённому визарду
type TravelOrder struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	UserID        uint           `json:"user_id" gorm:"not null;index:idx_user_travel_orders"`
	OrderID       string         `json:"order_id" gorm:"uniqueIndex;not null"`
	SessionID     string         `json:"session_id" gorm:"not null"`
	Status        string         `json:"status" gorm:"default:'pending';index:idx_travel_order_status"`
	TravelerCount int            `json:"traveler_count" gorm:"not null"`
	TotalPremium  string         `json:"total_premium"`
	Payload       datatypes.JSON `json:"payload"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// TravelOrderResponse структура ответа для заказа
type TravelOrderResponse struct {
	ID            uint           `json:"id"`
	OrderID       string         `json:"order_id"`
	Status        string         `json:"status"`
	TravelerCount int            `json:"traveler_count"`
	TotalPremium  string         `json:"total_premium"`
	Payload       datatypes.JSON `json:"payload"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TravelOrderListResponse список заказов с пагинацией
type TravelOrderListResponse struct {
	Orders     []TravelOrderResponse `json:"orders"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}
