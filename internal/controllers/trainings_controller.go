package controllers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crafthr/trainflow/internal/util"
	"github.com/crafthr/trainflow/pkg/trainflow/domain"
	"github.com/crafthr/trainflow/pkg/trainflow/models"
)

// CatalogRepo defines the interface for course catalog persistence, matching
// repository.TrainingDetailRepository.
type CatalogRepo interface {
	Save(td *domain.TrainingDetail) (int64, error)
	FindByID(id int64) (*domain.TrainingDetail, error)
	FindAll() (*[]domain.TrainingDetail, error)
}

// TrainingsController serves the course catalog the requests reference.
type TrainingsController struct {
	AuthController
	Catalog CatalogRepo
}

func NewTrainingsController(catalog CatalogRepo, userRepo UserRepo) *TrainingsController {
	return &TrainingsController{
		Catalog: catalog,
		AuthController: AuthController{
			UserRepo: userRepo,
		},
	}
}

func (c *TrainingsController) handleGetTrainings(w http.ResponseWriter, r *http.Request) {
	details, err := c.Catalog.FindAll()
	if err != nil {
		slog.Error("Failed to get trainings", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to get trainings")
		return
	}

	views := make([]models.TrainingApiResponse, 0, len(*details))
	for _, td := range *details {
		views = append(views, mapTrainingToApiTraining(td))
	}
	util.WriteJSONResponse(w, http.StatusOK, views)
}

func (c *TrainingsController) handleGetTrainingById(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "id is an integer")
		return
	}

	td, err := c.Catalog.FindByID(id)
	if err != nil {
		slog.Error("Failed to get training", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to get training")
		return
	}
	if td == nil {
		util.WriteJSONError(w, http.StatusNotFound, "training not found")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, mapTrainingToApiTraining(*td))
}

func (c *TrainingsController) handleCreateTraining(w http.ResponseWriter, r *http.Request) {
	req, err := util.DecodeJSONBody[models.CreateTrainingDetailRequest](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Title == "" {
		util.WriteJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	td := domain.TrainingDetail{
		Title:         req.Title,
		Description:   sql.NullString{String: req.Description, Valid: req.Description != ""},
		Category:      sql.NullString{String: req.Category, Valid: req.Category != ""},
		DurationHours: sql.NullInt64{Int64: req.DurationHours, Valid: req.DurationHours > 0},
	}
	if _, err := c.Catalog.Save(&td); err != nil {
		slog.Error("Failed to create training", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to create training")
		return
	}

	util.WriteJSONResponse(w, http.StatusCreated, mapTrainingToApiTraining(td))
}

func mapTrainingToApiTraining(td domain.TrainingDetail) models.TrainingApiResponse {
	view := models.TrainingApiResponse{
		ID:    td.ID,
		Title: td.Title,
	}
	if td.Description.Valid {
		view.Description = td.Description.String
	}
	if td.Category.Valid {
		view.Category = td.Category.String
	}
	if td.DurationHours.Valid {
		view.DurationHours = td.DurationHours.Int64
	}
	return view
}
