package services

import (
	"context"
	"errors"

	"film-catalog/internal/models"
	"film-catalog/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type FilmService interface {
	CreateFilm(ctx context.Context, fields models.FilmFields) (*models.Film, error)
	ListFilms(ctx context.Context) ([]models.Film, error)
	GetFilm(ctx context.Context, id string) (*models.Film, error)
	UpdateFilm(ctx context.Context, id string, fields models.FilmFields) (*models.Film, error)
	DeleteFilm(ctx context.Context, id string) error
}

// ImageStore removes poster objects the service owns once a film stops
// referencing them.
type ImageStore interface {
	OwnsURL(rawURL string) bool
	DeleteFile(ctx context.Context, objectPath string) error
}

type filmService struct {
	repo     repository.FilmRepository
	validate *validator.Validate
	logger   *logrus.Logger
	images   ImageStore
}

func NewFilmService(repo repository.FilmRepository, logger *logrus.Logger) FilmService {
	return &filmService{
		repo:     repo,
		validate: newValidator(),
		logger:   logger,
	}
}

func (s *filmService) SetImageStore(images ImageStore) {
	s.images = images
}

func (s *filmService) CreateFilm(ctx context.Context, fields models.FilmFields) (*models.Film, error) {
	if err := validateFields(s.validate, fields); err != nil {
		return nil, err
	}

	film := &models.Film{}
	fields.Apply(film)

	// A rejected write is reported the same way as missing input.
	if err := s.repo.Create(ctx, film); err != nil {
		return nil, validationError(err.Error(), err)
	}

	s.logger.WithField("id", film.ID).Debug("Film created")
	return film, nil
}

func (s *filmService) ListFilms(ctx context.Context) ([]models.Film, error) {
	films, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return films, nil
}

func (s *filmService) GetFilm(ctx context.Context, id string) (*models.Film, error) {
	film, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err, storeError)
	}
	return film, nil
}

func (s *filmService) UpdateFilm(ctx context.Context, id string, fields models.FilmFields) (*models.Film, error) {
	if err := validateFields(s.validate, fields); err != nil {
		return nil, err
	}

	var previous *models.Film
	if s.images != nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, s.lookupError(id, err, updateStoreError)
		}
		previous = existing
	}

	film, err := s.repo.Replace(ctx, id, fields)
	if err != nil {
		return nil, s.lookupError(id, err, updateStoreError)
	}

	if previous != nil && previous.ImageURL != film.ImageURL {
		s.removeImage(ctx, previous.ImageURL)
	}

	s.logger.WithField("id", id).Debug("Film updated")
	return film, nil
}

func (s *filmService) DeleteFilm(ctx context.Context, id string) error {
	film, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.lookupError(id, err, storeError)
	}

	s.removeImage(ctx, film.ImageURL)

	s.logger.WithField("id", id).Debug("Film deleted")
	return nil
}

func updateStoreError(cause error) error {
	return validationError(cause.Error(), cause)
}

// lookupError classifies a repository failure for an id-addressed operation.
// Malformed ids are answered as not found rather than as store failures:
// they cannot identify any record in the store.
func (s *filmService) lookupError(id string, err error, otherwise func(error) error) error {
	switch {
	case errors.Is(err, repository.ErrFilmNotFound):
		return notFoundError(err)
	case errors.Is(err, repository.ErrInvalidFilmID):
		s.logger.WithField("id", id).Debug("Malformed film id treated as not found")
		return notFoundError(err)
	default:
		return otherwise(err)
	}
}

func (s *filmService) removeImage(ctx context.Context, imageURL string) {
	if s.images == nil || imageURL == "" || !s.images.OwnsURL(imageURL) {
		return
	}
	if err := s.images.DeleteFile(ctx, imageURL); err != nil {
		s.logger.WithError(err).WithField("imageUrl", imageURL).Warn("Failed to delete poster from object storage")
	}
}
