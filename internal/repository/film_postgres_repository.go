package repository

import (
	"context"
	"errors"
	"fmt"

	"film-catalog/internal/database"
	"film-catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresFilmRepository struct {
	db      *database.Postgres
	timeout queryTimeout
}

func NewPostgresFilmRepository(db *database.Postgres) FilmRepository {
	return &postgresFilmRepository{
		db:      db,
		timeout: queryTimeout(db.GetQueryTimeout()),
	}
}

func parseUUID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilmID, id)
	}
	return parsed.String(), nil
}

// notFoundOr maps gorm's missing-row error to ErrFilmNotFound.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFilmNotFound
	}
	return err
}

// affectedOrNotFound reports ErrFilmNotFound when a write matched no row.
func affectedOrNotFound(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFilmNotFound
	}
	return nil
}

func (r *postgresFilmRepository) Create(ctx context.Context, film *models.Film) error {
	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	film.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(film).Error; err != nil {
		film.ID = ""
		return fmt.Errorf("insert film: %w", err)
	}
	return nil
}

func (r *postgresFilmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	films := make([]models.Film, 0)
	if err := r.db.WithContext(ctx).Find(&films).Error; err != nil {
		return nil, fmt.Errorf("find films: %w", err)
	}
	return films, nil
}

func (r *postgresFilmRepository) FindByID(ctx context.Context, id string) (*models.Film, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	var film models.Film
	if err := r.db.WithContext(ctx).First(&film, "id = ?", key).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &film, nil
}

func (r *postgresFilmRepository) Replace(ctx context.Context, id string, fields models.FilmFields) (*models.Film, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	var film models.Film
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Film{}).
			Where("id = ?", key).
			Updates(map[string]interface{}{
				"name":        fields.Name,
				"description": fields.Description,
				"image_url":   fields.ImageURL,
				"imdb":        fields.IMDB,
				"meta_score":  fields.MetaScore,
			})
		if err := affectedOrNotFound(result); err != nil {
			return err
		}
		return tx.First(&film, "id = ?", key).Error
	})
	if err != nil {
		return nil, err
	}
	return &film, nil
}

func (r *postgresFilmRepository) Delete(ctx context.Context, id string) (*models.Film, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	var film models.Film
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&film, "id = ?", key).Error; err != nil {
			return notFoundOr(err)
		}
		return affectedOrNotFound(tx.Delete(&models.Film{}, "id = ?", key))
	})
	if err != nil {
		return nil, err
	}
	return &film, nil
}
