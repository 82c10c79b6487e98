package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/dto"
	paymentservice "github.com/mealtab/mealtab/internal/service/paymentservice"
	"github.com/mealtab/mealtab/pkg/auth"
	"github.com/mealtab/mealtab/pkg/utils"
)

type Service interface {
	InitiatePayment(ctx context.Context, userID int, amount float64, description string, orderID *int) (*domain.Payment, error)
	VerifyPayment(ctx context.Context, confirmation paymentservice.Confirmation) (*domain.Payment, error)
	GetPayments(ctx context.Context, userID int) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// InitiatePayment godoc
//
//	@Summary		Initiate an online payment
//	@Description	Create a gateway order intent and a PENDING payment record bound to it. No balance change happens here.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InitiatePaymentRequestDTO	true	"Payment payload"
//	@Success		200		{object}	dto.InitiatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		502		{object}	utils.Response	"Gateway unavailable"
//	@Router			/api/user/payments/initiate [post]
func (h *PaymentHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.InitiatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.InitiatePayment(r.Context(), userID, req.Amount, req.Description, req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadGateway, "Failed to initiate payment")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InitiatePaymentResponseDTO{
		PaymentID:       payment.ID,
		GatewayOrderRef: payment.GatewayOrderRef,
		Amount:          payment.Amount,
		Status:          payment.Status,
	})
}

// VerifyPayment godoc
//
//	@Summary		Verify a payment confirmation
//	@Description	Validate the gateway signature and settle the payment. Duplicate confirmations return the settled payment without crediting again.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Confirmation payload"
//	@Success		200		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Signature invalid"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		409		{object}	utils.Response	"Payment already finalized as failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payments/verify [post]
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.VerifyPayment(r.Context(), paymentservice.Confirmation{
		GatewayOrderRef:   req.GatewayOrderRef,
		GatewayPaymentRef: req.GatewayPaymentRef,
		Signature:         req.Signature,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrSignatureInvalid):
			utils.RespondWithError(w, http.StatusBadRequest, "Payment verification failed")
		case errors.Is(err, paymentservice.ErrPaymentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrAlreadyFinalized):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// GetPayments godoc
//
//	@Summary		Get payment history
//	@Description	Retrieve the payment history for the authorized user, newest first.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Success		204	{object}	utils.Response	"No payments found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payments [get]
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payments, err := h.paymentService.GetPayments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payments not found")
		return
	}

	response := make([]dto.PaymentResponseDTO, len(payments))
	for i := range payments {
		response[i] = toPaymentResponse(&payments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPaymentResponse(payment *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:              payment.ID,
		Amount:          payment.Amount,
		Status:          payment.Status,
		PaymentMethod:   payment.PaymentMethod,
		GatewayOrderRef: payment.GatewayOrderRef,
		Description:     payment.Description,
		CreatedAt:       payment.CreatedAt,
		PaymentDate:     payment.PaymentDate,
	}
}
