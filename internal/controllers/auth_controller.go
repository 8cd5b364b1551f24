package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/crafthr/trainflow/internal/util"
	"github.com/crafthr/trainflow/pkg/trainflow/core"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
)

// UserRepo defines the interface for user persistence, matching
// repository.UserRepository.
type UserRepo interface {
	FindBySessionID(sessionID string, now time.Time) (*domain.User, error)
	FindByApiKey(apiKey string) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	FindAll() (*[]domain.User, error)
	Save(user *domain.User) (int64, error)
	FindById(id int64) (*domain.User, error)
	DeleteById(id int64) error
	UpdateSession(userID int64, sessionID string, expiry time.Time) error
	ClearSessionBySessionID(sessionID string) error
}

type AuthController struct {
	UserRepo UserRepo
}

func NewBaseController(userRepo UserRepo) *AuthController {
	return &AuthController{UserRepo: userRepo}
}

// RequireAuth resolves the caller's identity from the session cookie or the
// X-API-Key header and places the username on the request context. Requests
// without a verifiable identity get a 401.
func (ac *AuthController) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 1) Try session cookie
		if c, err := r.Cookie("sessionId"); err == nil && c.Value != "" {
			u, err := ac.UserRepo.FindBySessionID(c.Value, time.Now().UTC())
			if err == nil && u != nil && u.Enabled {
				ctx := context.WithValue(r.Context(), core.CtxKeyUsername, u.Username)
				next(w, r.WithContext(ctx))
				return
			}
		}
		// 2) Try API key from headers
		// Supported headers: X-API-Key: <key>
		apiKey := r.Header.Get("X-API-Key")
		if apiKey != "" {
			u, err := ac.UserRepo.FindByApiKey(apiKey)
			if err == nil && u != nil && u.Enabled {
				ctx := context.WithValue(r.Context(), core.CtxKeyUsername, u.Username)
				next(w, r.WithContext(ctx))
				return
			}
		}
		util.WriteJSONError(w, http.StatusUnauthorized, "Could not validate credentials")
	}
}

// usernameFromContext returns the authenticated caller's username, or ""
// when none was established.
func usernameFromContext(ctx context.Context) string {
	if v := ctx.Value(core.CtxKeyUsername); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
