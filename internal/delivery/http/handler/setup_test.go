package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliveryHttp "go-ecommerce-api/internal/delivery/http"
	"go-ecommerce-api/internal/delivery/http/handler"
	"go-ecommerce-api/internal/delivery/http/middleware"
	"go-ecommerce-api/internal/domain/entity"
	"go-ecommerce-api/internal/repository"
	"go-ecommerce-api/internal/usecase"
	"go-ecommerce-api/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestRouter wires the full handler stack against an in-memory SQLite
// database with foreign keys enabled, so cascade behavior matches Postgres.
func setupTestRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	decimal.MarshalJSONWithoutQuotes = true

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.NewReplacer("/", "_", "#", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Product{}, &entity.Order{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	customValidator := validator.NewValidator()
	productHandler := handler.NewProductHandler(usecase.NewProductUsecase(productRepo), customValidator)
	orderHandler := handler.NewOrderHandler(usecase.NewOrderUsecase(orderRepo, productRepo), customValidator)

	log := logrus.New()
	log.SetOutput(io.Discard)

	router := deliveryHttp.NewRouter(
		productHandler,
		orderHandler,
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)

	return router.Setup(), db
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// doRawRequest sends a verbatim body, for payloads a typed struct cannot express.
func doRawRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body["error"]
}

func createProduct(t *testing.T, db *gorm.DB, name, price string) entity.Product {
	t.Helper()

	product := entity.Product{
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func createOrder(t *testing.T, db *gorm.DB, product entity.Product, quantity int) entity.Order {
	t.Helper()

	order := entity.Order{
		ProductID:  product.ID,
		Quantity:   quantity,
		TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}
