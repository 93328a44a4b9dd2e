package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/annakov/streetstore/internal/metrics"
	"github.com/annakov/streetstore/internal/middleware"
	"github.com/annakov/streetstore/internal/models"
	"github.com/annakov/streetstore/internal/storage"
	"github.com/annakov/streetstore/internal/validation"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Storage interface for catalog access
type Storage interface {
	GetCatalog(context.Context) ([]models.Product, error)
}

// Notifier interface for relaying submitted orders
type Notifier interface {
	SendOrder(context.Context, models.Order) error
}

// Log interface for logging
type Log interface {
	Info(string, ...zapcore.Field)
	Error(string, ...zapcore.Field)
}

// BaseController struct for handling requests
type BaseController struct {
	ctx      context.Context
	storage  Storage
	notifier Notifier
	log      Log
}

// NewBaseController creates a new BaseController instance
func NewBaseController(ctx context.Context, storage Storage, notifier Notifier, log Log) *BaseController {
	instance := &BaseController{
		ctx:      ctx,
		storage:  storage,
		notifier: notifier,
		log:      log,
	}

	return instance
}

// Route sets up the routes for the BaseController
func (h *BaseController) Route() *chi.Mux {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.CompressResponseMiddleware)
		r.Get("/api/products", h.getProducts)
	})

	r.Post("/api/orders", h.postOrder)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (h *BaseController) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.storage.GetCatalog(h.ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoCatalog) {
			h.log.Error("no catalog to serve", zap.Error(err))
		} else {
			h.log.Error("failed to load catalog", zap.Error(err))
		}
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(products); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *BaseController) postOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid order data", http.StatusBadRequest)
		metrics.OrdersSubmitted.WithLabelValues("validation_error").Inc()
		return
	}
	defer r.Body.Close()

	if err := validation.ValidateOrder(&order); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		metrics.OrdersSubmitted.WithLabelValues("validation_error").Inc()
		return
	}

	if err := h.notifier.SendOrder(h.ctx, order); err != nil {
		h.log.Error("failed to send order notification", zap.Error(err))
		http.Error(w, "Failed to send order notification", http.StatusInternalServerError)
		metrics.OrdersSubmitted.WithLabelValues("error").Inc()
		return
	}

	h.log.Info("order submitted",
		zap.String("product", order.ProductName),
		zap.String("size", order.Size))
	metrics.OrdersSubmitted.WithLabelValues("success").Inc()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.OrderResponse{
		Success: true,
		Message: "Order submitted successfully",
	})
}
