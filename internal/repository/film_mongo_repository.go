package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"film-catalog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type filmDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"imageUrl"`
	IMDB        float64            `bson:"imdb"`
	MetaScore   float64            `bson:"metaScore"`
}

func (d filmDocument) toModel() models.Film {
	return models.Film{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		IMDB:        d.IMDB,
		MetaScore:   d.MetaScore,
	}
}

func fieldsUpdate(fields models.FilmFields) bson.M {
	return bson.M{"$set": bson.M{
		"name":        fields.Name,
		"description": fields.Description,
		"imageUrl":    fields.ImageURL,
		"imdb":        fields.IMDB,
		"metaScore":   fields.MetaScore,
	}}
}

type mongoFilmRepository struct {
	col     *mongo.Collection
	timeout queryTimeout
}

func NewMongoFilmRepository(col *mongo.Collection, timeout time.Duration) FilmRepository {
	return &mongoFilmRepository{
		col:     col,
		timeout: queryTimeout(timeout),
	}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidFilmID, id)
	}
	return oid, nil
}

func (r *mongoFilmRepository) Create(ctx context.Context, film *models.Film) error {
	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	doc := filmDocument{
		ID:          primitive.NewObjectID(),
		Name:        film.Name,
		Description: film.Description,
		ImageURL:    film.ImageURL,
		IMDB:        film.IMDB,
		MetaScore:   film.MetaScore,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert film: %w", err)
	}

	film.ID = doc.ID.Hex()
	return nil
}

func (r *mongoFilmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find films: %w", err)
	}
	defer cur.Close(ctx)

	films := make([]models.Film, 0)
	for cur.Next(ctx) {
		var doc filmDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode film: %w", err)
		}
		films = append(films, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate films: %w", err)
	}
	return films, nil
}

func (r *mongoFilmRepository) FindByID(ctx context.Context, id string) (*models.Film, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	var doc filmDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateMongoError(err)
	}
	film := doc.toModel()
	return &film, nil
}

func (r *mongoFilmRepository) Replace(ctx context.Context, id string, fields models.FilmFields) (*models.Film, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc filmDocument
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, fieldsUpdate(fields), opts).Decode(&doc); err != nil {
		return nil, translateMongoError(err)
	}
	film := doc.toModel()
	return &film, nil
}

func (r *mongoFilmRepository) Delete(ctx context.Context, id string) (*models.Film, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.timeout.withTimeout(ctx)
	defer cancel()

	var doc filmDocument
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateMongoError(err)
	}
	film := doc.toModel()
	return &film, nil
}

func translateMongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrFilmNotFound
	}
	return err
}
