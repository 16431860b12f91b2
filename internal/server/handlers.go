package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"celestial-payments/internal/database"
	"celestial-payments/internal/domain"
	"celestial-payments/internal/infrastructure/cashfree"
	"celestial-payments/internal/service"
)

type createPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required"`
}

type verifyRequest struct {
	OrderID string `json:"orderId"`
}

type settledResponse struct {
	Success       bool                 `json:"success"`
	OrderID       string               `json:"order_id"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	CustomerEmail string               `json:"customer_email"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

func (s *Server) health(c *gin.Context) {
	env := "sandbox"
	if s.cfg.CashfreeProduction() {
		env = "production"
	}

	body := gin.H{
		"status":          "ok",
		"cashfree_env":    env,
		"allowed_origins": s.cfg.AllowedOrigins,
	}
	if s.db != nil {
		body["database"] = database.Health(c.Request.Context(), s.db)
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) createPayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount and customer details are required"})
		return
	}

	created, err := s.orders.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		Amount:        req.Amount,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		s.upstreamError(c, "Failed to create order", err)
		return
	}

	c.JSON(http.StatusOK, created)
}

func (s *Server) verifyPayment(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
		return
	}

	result, err := s.orders.VerifyOrder(c.Request.Context(), req.OrderID)
	if err != nil {
		s.upstreamError(c, "Verify failed", err)
		return
	}

	if !result.Settled {
		body := gin.H{
			"success": false,
			"message": "Payment not successful yet",
		}
		if !s.cfg.Production() {
			body["payments"] = result.Attempts
		}
		c.JSON(http.StatusOK, body)
		return
	}

	attempt := result.Attempt
	resp := settledResponse{
		Success:       true,
		OrderID:       req.OrderID,
		Amount:        attempt.OrderAmount,
		Currency:      attempt.OrderCurrency,
		PaymentStatus: attempt.PaymentStatus,
	}
	if cd := attempt.CustomerDetails; cd != nil {
		resp.CustomerName = cd.CustomerName
		resp.CustomerPhone = cd.CustomerPhone
		resp.CustomerEmail = cd.CustomerEmail
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) slotBooked(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.bookingFailed(c, err)
		return
	}

	var details struct {
		Name        string `json:"name"`
		ServiceName string `json:"serviceName"`
	}
	if err := json.Unmarshal(raw, &details); err != nil {
		s.bookingFailed(c, err)
		return
	}

	booking := &domain.Booking{
		ID:          uuid.New(),
		Name:        details.Name,
		ServiceName: details.ServiceName,
		Details:     raw,
		CreatedAt:   time.Now(),
	}
	if err := s.bookings.Save(c.Request.Context(), booking); err != nil {
		s.bookingFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking details received and saved successfully.",
	})
}

func (s *Server) bookingFailed(c *gin.Context, err error) {
	s.log.Error().Err(err).Msg("booking save failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Failed to save booking details.",
	})
}

// upstreamError converts a processor failure into a 500. The processor's
// raw response only appears outside production.
func (s *Server) upstreamError(c *gin.Context, msg string, err error) {
	s.log.Error().Err(err).Msg(msg)

	body := gin.H{"error": msg}
	if !s.cfg.Production() {
		var apiErr *cashfree.APIError
		if errors.As(err, &apiErr) && json.Valid([]byte(apiErr.Body)) {
			body["details"] = json.RawMessage(apiErr.Body)
		} else {
			body["details"] = err.Error()
		}
	}
	c.JSON(http.StatusInternalServerError, body)
}
