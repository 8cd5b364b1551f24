package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/crafthr/trainflow/internal/config"
	"github.com/crafthr/trainflow/internal/util"
	"github.com/crafthr/trainflow/pkg/trainflow/models"
)

// SessionController handles login and logout for cookie-based sessions.
type SessionController struct {
	UserRepo UserRepo
}

func NewSessionController(userRepo UserRepo) *SessionController {
	return &SessionController{UserRepo: userRepo}
}

func (c *SessionController) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, err := util.DecodeJSONBody[models.LoginRequest](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Username == "" || req.Password == "" {
		util.WriteJSONError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := c.UserRepo.FindByUsername(req.Username)
	if err != nil {
		slog.Error("FindByUsername failed", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if u == nil || !u.Enabled {
		util.WriteJSONError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		util.WriteJSONError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		slog.Error("rand.Read failed", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sessionID := hex.EncodeToString(buf)
	expiryHours := config.GetSystemSettingInteger(config.WEB_SESSION_EXPIRY_HOURS)
	expires := time.Now().Add(time.Duration(expiryHours) * time.Hour)
	if err := c.UserRepo.UpdateSession(u.ID, sessionID, expires); err != nil {
		slog.Error("UpdateSession failed", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "sessionId",
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
	util.WriteJSONResponse(w, http.StatusOK, models.LoginResponse{Username: u.Username, Expires: expires})
}

func (c *SessionController) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("sessionId"); err == nil && cookie.Value != "" {
		if err := c.UserRepo.ClearSessionBySessionID(cookie.Value); err != nil {
			slog.Error("ClearSessionBySessionID failed", "error", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "sessionId",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}
