package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitebooks/ledger/internal/adapter/http/dto"
	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/infrastructure/metrics"
	"github.com/sitebooks/ledger/internal/usecase"
)

// ReconciliationService defines the behavior needed by ReconciliationHandler.
type ReconciliationService interface {
	ReconcileAccount(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error)
	ReconcileAll(ctx context.Context) (*usecase.ReconciliationReport, error)
	Resume(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error)
}

// ReconciliationHandler handles consistency check requests.
type ReconciliationHandler struct {
	reconUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconUC: reconUC}
}

// Reconcile checks one account. A drifted account is reported with 409 and
// the discrepancy detail; the account is already halted by then.
func (h *ReconciliationHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	result, err := h.reconUC.ReconcileAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrBalanceDrift) && result != nil {
			metrics.BalanceDriftDetected()
			writeJSON(w, http.StatusConflict, dto.ReconciliationFromResult(result))

			return
		}

		status := mapDomainError(err)
		writeError(w, status, "failed to reconcile account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromResult(result))
}

// ReconcileAll checks every account and returns the report.
func (h *ReconciliationHandler) ReconcileAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconUC.ReconcileAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reconcile accounts", err.Error())
		return
	}

	for range report.Discrepancies {
		metrics.BalanceDriftDetected()
	}

	writeJSON(w, http.StatusOK, dto.ReportFromUseCase(report))
}

// Resume lifts the write halt after the account verifies clean.
func (h *ReconciliationHandler) Resume(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	result, err := h.reconUC.Resume(r.Context(), accountID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to resume account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromResult(result))
}
