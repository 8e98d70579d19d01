package handlers

import (
	"errors"

	"film-catalog/internal/services"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FilmHandler struct {
	service services.FilmService
	logger  *logrus.Logger
}

func NewFilmHandler(service services.FilmService, logger *logrus.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		logger:  logger,
	}
}

// CreateFilm godoc
// @Summary Create a new film
// @Description Create a film record. All five fields are required; empty strings and zero numbers count as missing. imdb and metaScore must be JSON numbers; numeric strings such as "8.8" are rejected with 400.
// @Tags Films
// @Accept json
// @Produce json
// @Param film body FilmRequest true "Film to create"
// @Success 201 {object} models.Film "The film was successfully created"
// @Failure 400 {object} models.ErrorResponse "Invalid input"
// @Router /films [post]
func (h *FilmHandler) CreateFilm(c *fiber.Ctx) error {
	ctx := c.Context()

	var req FilmRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid film request body")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	film, err := h.service.CreateFilm(ctx, req.Fields())
	if err != nil {
		return h.fail(c, err, "", "Failed to create film")
	}

	return utils.JSONResponse(c, fiber.StatusCreated, film)
}

// GetAllFilms godoc
// @Summary Returns a list of all films
// @Description Every stored film in store order. No pagination or filtering.
// @Tags Films
// @Produce json
// @Success 200 {array} models.Film "A list of all films"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /films [get]
func (h *FilmHandler) GetAllFilms(c *fiber.Ctx) error {
	films, err := h.service.ListFilms(c.Context())
	if err != nil {
		return h.fail(c, err, "", "Failed to list films")
	}

	return utils.JSONResponse(c, fiber.StatusOK, films)
}

// GetFilmByID godoc
// @Summary Get a film by its ID
// @Tags Films
// @Produce json
// @Param id path string true "The film ID"
// @Success 200 {object} models.Film "The film details"
// @Failure 404 {object} models.ErrorResponse "Film not found"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /films/{id} [get]
func (h *FilmHandler) GetFilmByID(c *fiber.Ctx) error {
	id := c.Params("id")

	film, err := h.service.GetFilm(c.Context(), id)
	if err != nil {
		return h.fail(c, err, id, "Failed to get film")
	}

	return utils.JSONResponse(c, fiber.StatusOK, film)
}

// UpdateFilm godoc
// @Summary Update a film by ID
// @Description Replaces all five fields. Partial updates are not supported. imdb and metaScore must be JSON numbers; numeric strings such as "8.8" are rejected with 400.
// @Tags Films
// @Accept json
// @Produce json
// @Param id path string true "The film ID"
// @Param film body FilmRequest true "Replacement film fields"
// @Success 200 {object} models.Film "The film was successfully updated"
// @Failure 400 {object} models.ErrorResponse "Invalid input"
// @Failure 404 {object} models.ErrorResponse "Film not found"
// @Router /films/{id} [put]
func (h *FilmHandler) UpdateFilm(c *fiber.Ctx) error {
	id := c.Params("id")

	var req FilmRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).WithField("id", id).Warn("Invalid film request body")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	film, err := h.service.UpdateFilm(c.Context(), id, req.Fields())
	if err != nil {
		return h.fail(c, err, id, "Failed to update film")
	}

	return utils.JSONResponse(c, fiber.StatusOK, film)
}

// DeleteFilm godoc
// @Summary Delete a film by ID
// @Tags Films
// @Produce json
// @Param id path string true "The film ID"
// @Success 200 {object} models.DeleteResponse "The film was deleted"
// @Failure 404 {object} models.ErrorResponse "Film not found"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /films/{id} [delete]
func (h *FilmHandler) DeleteFilm(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.DeleteFilm(c.Context(), id); err != nil {
		return h.fail(c, err, id, "Failed to delete film")
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Film deleted successfully")
}

func (h *FilmHandler) fail(c *fiber.Ctx, err error, id, msg string) error {
	code := StatusFromError(err)

	entry := h.logger.WithError(err).WithField("status", code)
	if id != "" {
		entry = entry.WithField("id", id)
	}
	if code >= fiber.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Warn(msg)
	}

	return utils.ErrorResponse(c, code, err.Error())
}

// StatusFromError maps service error kinds onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
