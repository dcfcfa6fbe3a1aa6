package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pagamentos/internal/adapter/http/dto/request"
	"pagamentos/internal/adapter/http/dto/response"
	"pagamentos/internal/domain/entities"
	"pagamentos/internal/infrastructure/payments"
	"pagamentos/internal/usecase"
	"pagamentos/internal/usecase/interfaces"
	"pagamentos/pkg"
)

// PaymentHandler handles HTTP requests for payments.

type PaymentHandler struct {
	create usecase.ICreatePaymentUseCase
	update usecase.IUpdateStatusUseCase
	query  usecase.IPaymentQueryUseCase
}

func NewPaymentHandler(create usecase.ICreatePaymentUseCase, update usecase.IUpdateStatusUseCase, query usecase.IPaymentQueryUseCase) *PaymentHandler {
	return &PaymentHandler{create: create, update: update, query: query}
}

// Create registers a payment and dispatches its saga.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.create.Execute(c.Request.Context(), usecase.CreatePaymentInput{
		CPF:         req.CPF,
		Description: req.Description,
		Amount:      req.Amount,
		Method:      entities.PaymentMethod(req.Method),
	})
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create success payment_id=%s status=%s", out.Payment.ID, out.Status)
	c.JSON(http.StatusCreated, response.FromCreateOutput(out))
}

// GetByID returns a payment by its internal id.
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	p, err := h.query.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// List returns payments filtered by cpf, method and status query params.
func (h *PaymentHandler) List(c *gin.Context) {
	filters := interfaces.PaymentFilters{
		CPF:    c.Query("cpf"),
		Method: entities.PaymentMethod(c.Query("method")),
		Status: entities.PaymentStatus(c.Query("status")),
	}

	items, err := h.query.List(c.Request.Context(), filters)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, response.FromPayment(p))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateStatus applies a manual, operator-supplied status.
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.update.Execute(c.Request.Context(), id, entities.PaymentStatus(req.Status))
	if err != nil {
		log.Printf("[payment][handler] manual update failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUpdateStatus(out))
}

// Delete removes a payment record.
func (h *PaymentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.query.Delete(c.Request.Context(), id); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Webhook ingests Mercado Pago event notifications. Non-payment events are
// acknowledged and ignored so the provider stops redelivering them.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req request.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] webhook invalid payload err=%v", err)
	}

	eventType := req.Type
	if eventType == "" {
		eventType = req.Topic
	}
	if eventType == "" {
		eventType = c.Query("topic")
	}
	if eventType != "payment" {
		log.Printf("[payment][handler] webhook ignored type=%s", eventType)
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "non-payment event type"})
		return
	}

	gatewayID := req.Data.ID
	if gatewayID == "" {
		gatewayID = c.Query("id")
	}
	if gatewayID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing payment identifier in payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.update.Execute(c.Request.Context(), gatewayID, "")
	if err != nil {
		log.Printf("[payment][handler] webhook reconciliation failed gateway_id=%s err=%v", gatewayID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] webhook reconciled payment_id=%s status=%s", out.ID, out.Status)
	c.JSON(http.StatusOK, response.FromUpdateStatus(out))
}

func mapPaymentError(err error) *pkg.AppError {
	var verr *entities.ValidationError
	var gerr *payments.GatewayError

	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", verr.Message, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "payment method is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.As(err, &gerr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", gerr.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
