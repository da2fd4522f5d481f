package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-news-platform/internal/errors"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/service"
)

type registerRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	DIDAddress string `json:"did_address,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
}

func toAuthResponse(res *service.AuthResult) authResponse {
	return authResponse{
		User:        res.User,
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(res.ExpiresIn.Seconds()),
	}
}

func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	res, err := h.svc.RegisterUser(r.Context(), service.RegisterParams{
		Username:   in.Username,
		Email:      in.Email,
		Password:   in.Password,
		Role:       models.UserRole(in.Role),
		DIDAddress: in.DIDAddress,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(res))
}

func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	res, err := h.svc.LoginUser(r.Context(), in.Username, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(res))
}
