package balance

import (
	"context"
	"errors"
	"net/http"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/dto"
	"github.com/mealtab/mealtab/internal/service/ledgerservice"
	"github.com/mealtab/mealtab/pkg/auth"
	"github.com/mealtab/mealtab/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetHistory(ctx context.Context, userID int) ([]domain.LedgerEvent, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the amount owed, the credit limit and the remaining available credit for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Balance and credit headroom"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Balance not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrBalanceNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		CreditLimit:     balance.CreditLimit,
		CurrentBalance:  balance.CurrentBalance,
		AvailableCredit: balance.Available(),
	})
}

// GetHistory godoc
//
//	@Summary		Get ledger history
//	@Description	Get the append-only ledger events for the authenticated user in application order.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEventResponseDTO	"Ledger events"
//	@Success		204	{object}	utils.Response				"No events recorded"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/balance/history [get]
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	events, err := h.ledgerService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ledger history")
		return
	}
	if len(events) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No ledger events")
		return
	}

	response := make([]dto.LedgerEventResponseDTO, len(events))
	for i, event := range events {
		response[i] = dto.LedgerEventResponseDTO{
			Delta:            event.Delta,
			ResultingBalance: event.ResultingBalance,
			IdempotencyKey:   event.IdempotencyKey,
			CreatedAt:        event.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
