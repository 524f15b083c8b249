package handler

import (
	"errors"
	"net/http"
	"strings"

	authdomain "law-office-go/internal/domain/auth"
	"law-office-go/internal/transport/httpserver/middleware"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	token, user, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			h.log.BusinessError("auth.login: invalid credentials", err, "username", req.Username)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "wrong username or password")
			return
		}
		h.log.InternalError("auth.login: login failed", err, "username", req.Username)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing_token", "authentication required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid": true,
		"user": map[string]interface{}{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "password is required")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if role := strings.TrimSpace(req.Role); role != "" && role != authdomain.RoleAdmin && role != authdomain.RoleUser {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid role")
		return
	}

	user, err := h.Auth.Register(r.Context(), authdomain.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, authdomain.ErrUsernameTaken) {
			h.log.BusinessError("auth.register: username taken", err, "username", req.Username)
			writeError(w, http.StatusBadRequest, "conflict", "username already exists")
			return
		}
		h.log.InternalError("auth.register: create user failed", err, "username", req.Username)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func toUserResponse(user *authdomain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
}
