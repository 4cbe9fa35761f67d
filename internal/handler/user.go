package handler

import (
	"errors"
	"net/http"

	"freshkart-be/internal/user"
	"freshkart-be/internal/utils"
)

type UserHandler struct {
	Svc user.Service
}

type checkUserRequest struct {
	UserID string `json:"userId"`
}

// CheckUser reports whether an email is already registered.
func (h *UserHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	var req checkUserRequest
	if err := decodeJSON(r, &req); err != nil || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	registered, err := h.Svc.IsRegistered(r.Context(), req.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"result": registered})
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	token, _, err := h.Svc.Login(r.Context(), req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type signUpRequest struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil || req.UserID == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if _, err := h.Svc.Register(r.Context(), req.Username, req.UserID, req.Password); err != nil {
		// Duplicate email and storage failure collapse into the same caller
		// contract: creation did not happen.
		writeError(w, http.StatusBadRequest, "Failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userKey, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "Session expired")
		return
	}

	profile, err := h.Svc.GetUserByKey(r.Context(), userKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": profile})
}
