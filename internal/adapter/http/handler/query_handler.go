package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitebooks/ledger/internal/adapter/http/dto"
	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

// QueryService defines the read-side projections needed by QueryHandler.
type QueryService interface {
	Summary(ctx context.Context, accountID string) (*usecase.SummaryView, error)
	Summaries(ctx context.Context, input usecase.SummariesInput) ([]*usecase.SummaryView, error)
	Overdue(ctx context.Context, limit, offset int) ([]*usecase.SummaryView, error)
	LowStock(ctx context.Context, limit, offset int) ([]*usecase.SummaryView, error)
}

// QueryHandler handles summary and report requests.
type QueryHandler struct {
	queryUC QueryService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(queryUC QueryService) *QueryHandler {
	return &QueryHandler{queryUC: queryUC}
}

// Summary returns one account's aggregate with its current status.
func (h *QueryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	view, err := h.queryUC.Summary(r.Context(), accountID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get summary", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromView(view))
}

// Summaries returns aggregates for all accounts.
func (h *QueryHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	input := usecase.SummariesInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	}

	if kindParam := r.URL.Query().Get("kind"); kindParam != "" {
		kind := domain.AccountKind(kindParam)
		if !kind.Valid() {
			writeError(w, http.StatusBadRequest, "unknown account kind", kindParam)
			return
		}

		input.Kind = &kind
	}

	views, err := h.queryUC.Summaries(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list summaries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummariesFromViews(views))
}

// Overdue lists financial accounts past their due date.
func (h *QueryHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	views, err := h.queryUC.Overdue(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list overdue accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummariesFromViews(views))
}

// LowStock lists inventory accounts needing replenishment.
func (h *QueryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	views, err := h.queryUC.LowStock(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list low stock accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummariesFromViews(views))
}
