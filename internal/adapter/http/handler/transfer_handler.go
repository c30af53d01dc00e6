package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vbalan/bankcore/internal/adapter/http/dto"
	"github.com/vbalan/bankcore/internal/adapter/http/middleware"
	"github.com/vbalan/bankcore/internal/domain"
	"github.com/vbalan/bankcore/internal/infrastructure/metrics"
	"github.com/vbalan/bankcore/internal/usecase"
)

// TransferHandler handles transfer requests.
type TransferHandler struct {
	transferUC *usecase.TransferUseCase
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC *usecase.TransferUseCase) *TransferHandler {
	return &TransferHandler{transferUC: transferUC}
}

// Create validates and applies a transfer. Business rejections and
// store failures both come back as the error envelope; only the
// transport status distinguishes a definite rejection from an
// uncertain outcome.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no authenticated principal")
		return
	}

	var body dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, verr := domain.NewTransferRequest(
		body.SourceAccount,
		body.DestinationAccount,
		string(body.Amount),
		body.Description,
	)
	if verr != nil {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	outcome, err := h.transferUC.Transfer(r.Context(), usecase.TransferInput{
		Principal: principal,
		Request:   req,
	})
	if err != nil {
		metrics.TransfersProcessed.WithLabelValues(domain.ReasonStoreFailure.String()).Inc()
		writeError(w, http.StatusInternalServerError, "transfer outcome uncertain, storage failure")
		return
	}

	metrics.TransfersProcessed.WithLabelValues(outcome.Reason.String()).Inc()

	if !outcome.Applied() {
		writeError(w, statusForReason(outcome.Reason), outcome.Message)
		return
	}

	amount, _ := req.Amount.Float64()
	metrics.TransferAmount.Observe(amount)

	writeJSON(w, http.StatusOK, dto.OK(outcome.Message, dto.TransferDataFrom(outcome, req)))
}
