package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vbalan/bankcore/internal/adapter/http/dto"
	"github.com/vbalan/bankcore/internal/infrastructure/auth"
	"github.com/vbalan/bankcore/internal/usecase"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userUC     *usecase.UserUseCase
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC *usecase.UserUseCase, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{userUC: userUC, jwtManager: jwtManager}
}

// Register creates a new user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userUC.Register(r.Context(), usecase.RegisterInput{
		Email:    body.Email,
		Name:     body.Name,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.OK("user registered", dto.UserFromDomain(user)))
}

// Login verifies credentials and issues a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, dto.OK("login successful", dto.TokenData{
		Token: token,
		User:  dto.UserFromDomain(user),
	}))
}
