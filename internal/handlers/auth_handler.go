package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httpresp"
	"github.com/BruksfildServices01/cutcorp-booking/internal/middleware"
	ucAuth "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/auth"
)

type AuthHandler struct {
	auth *ucAuth.Service
}

func NewAuthHandler(auth *ucAuth.Service) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// ======================================================
// REQUESTS
// ======================================================

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ReauthRequest struct {
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ======================================================
// LOGIN / LOGOUT
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.SignOut(c.Request.Context(), middleware.Claims(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"signed_out": true})
}

// ======================================================
// CURRENT USER
// ======================================================

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, user)
}

// Reauthenticate lets the panel confirm the password before opening a
// destructive dialog.
func (h *AuthHandler) Reauthenticate(c *gin.Context) {
	var req ReauthRequest
	if !bind(c, &req) {
		return
	}

	if _, err := h.auth.Reauthenticate(c.Request.Context(), middleware.UserID(c), req.Password); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"ok": true})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bind(c, &req) {
		return
	}

	err := h.auth.ChangePassword(
		c.Request.Context(),
		middleware.UserID(c),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"password_changed": true})
}
