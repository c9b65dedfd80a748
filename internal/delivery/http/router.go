package http

import (
	"net/http"

	_ "go-ecommerce-api/docs"
	"go-ecommerce-api/internal/delivery/http/handler"
	"go-ecommerce-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Router struct {
	router            *mux.Router
	productHandler    *handler.ProductHandler
	orderHandler      *handler.OrderHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		productHandler:    productHandler,
		orderHandler:      orderHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Product routes. Ids are constrained to digits so a malformed id
	// falls through to the router's 404.
	api.HandleFunc("/products", r.productHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/products", r.productHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id:[0-9]+}", r.productHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", r.productHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id:[0-9]+}", r.productHandler.Delete).Methods(http.MethodDelete)

	// Order routes
	api.HandleFunc("/orders", r.orderHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/orders", r.orderHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id:[0-9]+}", r.orderHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}", r.orderHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id:[0-9]+}", r.orderHandler.Delete).Methods(http.MethodDelete)

	// Swagger documentation
	r.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Root and health endpoints
	r.router.HandleFunc("/", r.root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "E-Commerce API is running", "documentation": "Visit /swagger/index.html for API documentation"}`))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
