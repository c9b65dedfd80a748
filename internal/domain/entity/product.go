package entity

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (Product) TableName() string {
	return "products"
}
