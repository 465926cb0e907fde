package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	tokens      ports.TokenService
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Register godoc
// @Summary      Registers a new user
// @Description  Creates a user from a full name, a unique email and a password
// @Tags         auth
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      409
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameNotFull),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrWeakPassword):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEmailTaken):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary      Authenticates a user
// @Description  Verifies email and password and returns an access and a refresh token
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	respondJSON(w, http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh mints a new access token for the identity behind the refresh token.
// The refresh token itself is not rotated or invalidated.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	accessToken, err := h.tokens.IssueAccess(user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	respondJSON(w, http.StatusOK, accessTokenResponse{AccessToken: accessToken})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
