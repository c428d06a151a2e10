package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/adapter/http/dto"
	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/infrastructure/metrics"
	"github.com/sitebooks/ledger/internal/usecase"
)

// RecorderService defines the behavior needed to append transactions.
type RecorderService interface {
	Record(ctx context.Context, input usecase.RecordInput) (*domain.Entry, error)
}

// HistoryService defines the read-side behavior for transaction listings.
type HistoryService interface {
	History(ctx context.Context, input usecase.HistoryInput) ([]*domain.Entry, error)
}

// BalanceService defines historical balance lookups.
type BalanceService interface {
	BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error)
}

// TransactionHandler handles the write path and transaction history.
type TransactionHandler struct {
	recorder RecorderService
	history  HistoryService
	balance  BalanceService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(recorder RecorderService, history HistoryService, balance BalanceService) *TransactionHandler {
	return &TransactionHandler{
		recorder: recorder,
		history:  history,
		balance:  balance,
	}
}

// Record appends one transaction to the account's ledger.
func (h *TransactionHandler) Record(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(accountID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction type", err.Error())
		return
	}

	start := time.Now()

	entry, err := h.recorder.Record(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record transaction", err.Error())

		return
	}

	metrics.TransactionRecorded(string(entry.Type))
	metrics.ObserveRecordDuration(time.Since(start).Seconds())

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// List returns the account's transaction history in display order.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	page := parseIntQuery(r, "page", 1)
	pageSize := parseIntQuery(r, "page_size", 50)

	entries, err := h.history.History(r.Context(), usecase.HistoryInput{
		AccountID: accountID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transactions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries:  dto.EntriesFromDomain(entries),
		Page:     page,
		PageSize: pageSize,
	})
}

// BalanceAt returns the balance as of a business date.
func (h *TransactionHandler) BalanceAt(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	atParam := r.URL.Query().Get("at")
	if atParam == "" {
		writeError(w, http.StatusBadRequest, "missing at parameter", "expected RFC 3339 timestamp")
		return
	}

	at, err := time.Parse(time.RFC3339, atParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid at parameter", err.Error())
		return
	}

	balance, err := h.balance.BalanceAt(r.Context(), accountID, at)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceAtResponse{
		AccountID: accountID,
		At:        at,
		Balance:   balance,
	})
}
