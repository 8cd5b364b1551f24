package controllers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/crafthr/trainflow/internal/util"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
	"github.com/crafthr/trainflow/pkg/trainflow/models"
)

type UsersController struct {
	AuthController
}

func NewUsersController(userRepo UserRepo) *UsersController {
	return &UsersController{
		AuthController: AuthController{
			UserRepo: userRepo,
		},
	}
}

// handleGetUsers returns all users
func (c *UsersController) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.UserRepo.FindAll()
	if err != nil {
		slog.Error("Failed to get users", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to get users")
		return
	}

	views := make([]models.UserApiResponse, 0, len(*users))
	for _, u := range *users {
		views = append(views, mapUserToApiUser(u))
	}
	util.WriteJSONResponse(w, http.StatusOK, views)
}

// handleCreateUser creates a new user. The password is stored as a bcrypt
// hash; an API key is generated when requested.
func (c *UsersController) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := util.DecodeJSONBody[models.CreateUserRequest](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid user data")
		return
	}
	if req.Username == "" || req.Password == "" {
		util.WriteJSONError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := domain.User{
		Username: req.Username,
		Password: string(hashed),
		Enabled:  req.Enabled,
	}
	if req.GenerateApiKey {
		user.ApiKey = sql.NullString{String: uuid.NewString(), Valid: true}
	}

	id, err := c.UserRepo.Save(&user)
	if err != nil {
		slog.Error("Failed to create user", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user.ID = id
	util.WriteJSONResponse(w, http.StatusCreated, mapUserToApiUser(user))
}

// handleGetUserById gets a user by their ID
func (c *UsersController) handleGetUserById(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := c.UserRepo.FindById(id)
	if err != nil {
		slog.Error("Failed to get user", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	if user == nil {
		util.WriteJSONError(w, http.StatusNotFound, "User not found")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, mapUserToApiUser(*user))
}

// handleDeleteUser deletes a user by ID
func (c *UsersController) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := c.UserRepo.DeleteById(id); err != nil {
		slog.Error("Failed to delete user", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// mapUserToApiUser strips credential material from the stored row.
func mapUserToApiUser(u domain.User) models.UserApiResponse {
	view := models.UserApiResponse{
		ID:       u.ID,
		Username: u.Username,
		Enabled:  u.Enabled,
	}
	if u.ApiKey.Valid {
		view.ApiKey = u.ApiKey.String
	}
	if u.Created.Valid {
		t := u.Created.Time
		view.Created = &t
	}
	return view
}
