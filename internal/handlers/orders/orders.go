package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/dto"
	"github.com/mealtab/mealtab/internal/service/ledgerservice"
	orderservice "github.com/mealtab/mealtab/internal/service/orderservice"
	"github.com/mealtab/mealtab/pkg/auth"
	"github.com/mealtab/mealtab/pkg/utils"
)

type Service interface {
	PlaceOrder(ctx context.Context, userID, providerID int, items []orderservice.OrderItemInput, paymentMethod, instructions string) (*domain.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int) error
	GetOrders(ctx context.Context, userID, page, limit int) ([]domain.Order, error)
	AdvanceStatus(ctx context.Context, providerID, orderID int, status string) error
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder godoc
//
//	@Summary		Place a new order on credit
//	@Description	Price the submitted line items from the catalog, admit the total against the user's credit limit and create the order.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.OrderResponseDTO		"Order placed"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient credit"
//	@Failure		422		{object}	utils.Response				"Item unavailable or price mismatch"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.CreditPaymentMethod
	}

	items := make([]orderservice.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = orderservice.OrderItemInput{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	order, err := h.orderService.PlaceOrder(r.Context(), userID, req.ProviderID, items, req.PaymentMethod, req.SpecialInstructions)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrCreditLimitExceeded):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient credit limit")
		case errors.Is(err, ledgerservice.ErrUserInactive):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, orderservice.ErrEmptyOrder),
			errors.Is(err, orderservice.ErrInvalidQuantity):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrItemUnavailable),
			errors.Is(err, orderservice.ErrPriceMismatch):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderResponse(order))
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve the order history for the authorized user, newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{array}		dto.OrderResponseDTO
//	@Success		204		{object}	utils.Response	"No orders found"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.orderService.GetOrders(r.Context(), userID, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Orders not found")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = toOrderResponse(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CancelOrder godoc
//
//	@Summary		Cancel an order
//	@Description	Cancel the order and reverse its ledger debit. Repeated cancellations are absorbed.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Order ID"
//	@Success		200	{object}	utils.Response	"Order cancelled"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order can no longer be cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	err = h.orderService.CancelOrder(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotCancellable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order cancelled"})
}

// AdvanceStatus godoc
//
//	@Summary		Advance order status
//	@Description	Provider-side transition along PLACED -> PREPARING -> DELIVERED.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Order ID"
//	@Param			request	body		dto.AdvanceOrderStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	utils.Response	"Status updated"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Invalid transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{id}/status [post]
func (h *OrderHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	providerID := r.Context().Value(auth.UserIDKey).(int)

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.AdvanceOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.orderService.AdvanceStatus(r.Context(), providerID, orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Status updated"})
}

func toOrderResponse(order *domain.Order) dto.OrderResponseDTO {
	items := make([]dto.OrderItemResponseDTO, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemResponseDTO{
			ItemID:     item.ItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
	}
	return dto.OrderResponseDTO{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		ProviderID:    order.ProviderID,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
		Items:         items,
	}
}
