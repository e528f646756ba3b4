package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizhub/internal/api/middleware"
	"quizhub/internal/app/service"
	"quizhub/internal/common"
	"quizhub/internal/common/security"
	"quizhub/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Get("/autologin", h.autologin)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/logout", h.logout)
	})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}

type loginResponse struct {
	User *model.User `json:"user"`
	// Token is only present for the bearer carrier (rememberMe=false); the
	// cookie carrier never exposes the token to client script.
	Token string `json:"token,omitempty"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	// Deliver threads the chosen carrier exactly once: it either sets the
	// session cookie or hands back the token for the response body.
	token := result.Carrier.Deliver(w)
	common.RespondWithJSON(w, http.StatusOK, loginResponse{User: result.User, Token: token})
}

type autologinResponse struct {
	User *model.User `json:"user"`
}

// autologin is the identity-verification endpoint. It always answers 200; an
// unresolved identity is {"user": null}, never an error.
func (h *AuthHandler) autologin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithJSON(w, http.StatusOK, autologinResponse{User: nil})
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Valid token for a user that no longer exists.
			common.RespondWithJSON(w, http.StatusOK, autologinResponse{User: nil})
			return
		}
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, autologinResponse{User: user})
}

// logout clears the cookie carrier. An outstanding bearer token stays valid
// until it expires; the client is expected to drop its local copy.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	security.ClearSessionCookie(w)
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Logged out successfully"})
}
