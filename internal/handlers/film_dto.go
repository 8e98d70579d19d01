package handlers

import "film-catalog/internal/models"

type FilmRequest struct {
	Name        string  `json:"name" example:"Inception"`
	Description string  `json:"description" example:"A mind-bending thriller by Christopher Nolan."`
	ImageURL    string  `json:"imageUrl" example:"https://link-to-image.com/inception.jpg"`
	IMDB        float64 `json:"imdb" example:"8.8"`
	MetaScore   float64 `json:"metaScore" example:"74"`
}

func (r FilmRequest) Fields() models.FilmFields {
	return models.FilmFields{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		IMDB:        r.IMDB,
		MetaScore:   r.MetaScore,
	}
}
