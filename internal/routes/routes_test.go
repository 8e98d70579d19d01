package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"film-catalog/internal/handlers"
	"film-catalog/internal/models"
	"film-catalog/internal/repository"
	"film-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type emptyRepo struct{}

func (emptyRepo) Create(ctx context.Context, film *models.Film) error {
	film.ID = "6523f1c2a4b5c6d7e8f90123"
	return nil
}

func (emptyRepo) FindAll(ctx context.Context) ([]models.Film, error) {
	return []models.Film{}, nil
}

func (emptyRepo) FindByID(ctx context.Context, id string) (*models.Film, error) {
	return nil, repository.ErrFilmNotFound
}

func (emptyRepo) Replace(ctx context.Context, id string, fields models.FilmFields) (*models.Film, error) {
	return nil, repository.ErrFilmNotFound
}

func (emptyRepo) Delete(ctx context.Context, id string) (*models.Film, error) {
	return nil, repository.ErrFilmNotFound
}

func TestSetup(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(log)})
	Setup(app,
		handlers.NewFilmHandler(services.NewFilmService(emptyRepo{}, log), log),
		handlers.NewUploadHandler(nil, log),
	)

	tests := []struct {
		method string
		target string
		want   int
	}{
		{method: http.MethodGet, target: "/api/films", want: http.StatusOK},
		{method: http.MethodGet, target: "/api/films/", want: http.StatusOK},
		{method: http.MethodGet, target: "/api/films/6523f1c2a4b5c6d7e8f90123", want: http.StatusNotFound},
		{method: http.MethodPost, target: "/api/films", want: http.StatusBadRequest},
		{method: http.MethodPut, target: "/api/films/6523f1c2a4b5c6d7e8f90123", want: http.StatusBadRequest},
		{method: http.MethodDelete, target: "/api/films/6523f1c2a4b5c6d7e8f90123", want: http.StatusNotFound},
		{method: http.MethodGet, target: "/api/upload/presign?filename=a.jpg", want: http.StatusServiceUnavailable},
		{method: http.MethodPatch, target: "/api/films/6523f1c2a4b5c6d7e8f90123", want: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.target, nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.target, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.target, tt.want, resp.StatusCode)
		}
	}
}
