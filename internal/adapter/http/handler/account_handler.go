package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vbalan/bankcore/internal/adapter/http/dto"
	"github.com/vbalan/bankcore/internal/adapter/http/middleware"
	"github.com/vbalan/bankcore/internal/domain"
	"github.com/vbalan/bankcore/internal/usecase"
)

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC *usecase.AccountUseCase
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Open opens a new account for the authenticated principal.
func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no authenticated principal")
		return
	}

	var body dto.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountUC.OpenAccount(r.Context(), usecase.OpenAccountInput{
		OwnerID: principal,
		Class:   domain.AccountClass(body.Class),
	})
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.OK("account opened", dto.AccountFromDomain(account)))
}

// Get retrieves an account by number.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		writeError(w, http.StatusBadRequest, "missing account number")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), number)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OK("account", dto.AccountFromDomain(account)))
}

// List lists the authenticated principal's accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no authenticated principal")
		return
	}

	limit := parseIntQuery(r, "limit", usecase.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.accountUC.ListAccounts(r.Context(), principal, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts")
		return
	}

	writeJSON(w, http.StatusOK, dto.OK("accounts", dto.AccountsFromDomain(accounts)))
}
