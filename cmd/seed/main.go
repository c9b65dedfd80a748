package main

import (
	"math/rand"

	"go-ecommerce-api/config"
	"go-ecommerce-api/internal/domain/entity"
	"go-ecommerce-api/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	productCount = 5
	orderCount   = 10
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	logrus.Info("Starting database seeding...")

	products, err := seedProducts(db, productCount)
	if err != nil {
		logrus.Fatalf("Error seeding products: %v", err)
	}

	if err := seedOrders(db, products, orderCount); err != nil {
		logrus.Fatalf("Error seeding orders: %v", err)
	}

	logrus.Info("Database seeding completed successfully")
}

func seedProducts(db *gorm.DB, count int) ([]entity.Product, error) {
	products := make([]entity.Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, entity.Product{
			Name:        gofakeit.ProductName(),
			Description: gofakeit.ProductDescription(),
			Price:       decimal.NewFromFloat(gofakeit.Price(10, 1000)).Round(2),
		})
	}

	logrus.Infof("Inserting %d sample products...", count)
	if err := db.Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func seedOrders(db *gorm.DB, products []entity.Product, count int) error {
	orders := make([]entity.Order, 0, count)
	for i := 0; i < count; i++ {
		product := products[rand.Intn(len(products))]
		quantity := rand.Intn(5) + 1

		orders = append(orders, entity.Order{
			ProductID:  product.ID,
			Quantity:   quantity,
			TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}

	logrus.Infof("Inserting %d sample orders...", count)
	return db.Create(&orders).Error
}
