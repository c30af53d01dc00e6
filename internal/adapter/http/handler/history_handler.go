package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vbalan/bankcore/internal/adapter/http/dto"
	"github.com/vbalan/bankcore/internal/usecase"
)

// HistoryHandler serves transaction listings.
type HistoryHandler struct {
	historyUC *usecase.HistoryUseCase
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyUC *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// ListByAccount lists an account's transactions, newest first, each
// tagged sent or received from the account's point of view.
func (h *HistoryHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		writeError(w, http.StatusBadRequest, "missing account number")
		return
	}

	limit := parseIntQuery(r, "limit", usecase.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	activity, err := h.historyUC.ListByAccount(r.Context(), number, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, dto.OK("transactions", dto.ActivitiesFromDomain(activity)))
}

// Get retrieves a single transaction record.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID")
		return
	}

	record, err := h.historyUC.GetRecord(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OK("transaction", dto.RecordFromDomain(record)))
}
