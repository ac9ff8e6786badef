package api

import (
	"net/http"

	"congocar/internal/auth"
	"congocar/internal/entities"
	"congocar/internal/service"
)

type AuthHandler struct {
	Service service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// SignUp registers a client profile.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req entities.SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.Service.SignUp(req.Email, req.Password, req.Username)
	if err != nil {
		// The provider message is shown verbatim in the client banner.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, entities.LoginResponse{Token: token})
}

// Me resolves the current session's profile: identity id plus role.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	profileID, ok := auth.ProfileIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	profile, err := h.Service.Profile(profileID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
