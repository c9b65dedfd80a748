package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uint            `gorm:"primaryKey"`
	ProductID  uint            `gorm:"not null;index"`
	Product    *Product        `gorm:"constraint:OnDelete:CASCADE"`
	Quantity   int             `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
