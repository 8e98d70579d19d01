package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"film-catalog/internal/database"
	"film-catalog/internal/models"
)

var (
	ErrFilmNotFound = errors.New("film not found")
	// ErrInvalidFilmID is returned when an id cannot be parsed in the store's
	// native id format. Such an id can never match a record.
	ErrInvalidFilmID = errors.New("invalid film id")
)

type FilmRepository interface {
	Create(ctx context.Context, film *models.Film) error
	FindAll(ctx context.Context) ([]models.Film, error)
	FindByID(ctx context.Context, id string) (*models.Film, error)
	// Replace overwrites the five record fields and returns the stored record
	// as it is after the write.
	Replace(ctx context.Context, id string, fields models.FilmFields) (*models.Film, error)
	// Delete removes the record and returns it as it was before removal.
	Delete(ctx context.Context, id string) (*models.Film, error)
}

// NewFilmRepository returns the repository matching the concrete store.
func NewFilmRepository(db database.Database) (FilmRepository, error) {
	switch store := db.(type) {
	case *database.Mongo:
		return NewMongoFilmRepository(store.Films(), store.GetQueryTimeout()), nil
	case *database.Postgres:
		return NewPostgresFilmRepository(store), nil
	default:
		return nil, fmt.Errorf("no film repository for driver %q", db.Driver())
	}
}

type queryTimeout time.Duration

func (t queryTimeout) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || t <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, time.Duration(t))
}
