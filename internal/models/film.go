package models

// Film is the only entity of the catalog. ID is assigned by the store on
// creation and never changes afterwards.
type Film struct {
	ID          string  `gorm:"primaryKey;type:uuid" json:"id" example:"6523f1c2a4b5c6d7e8f90123"`
	Name        string  `gorm:"not null" json:"name" example:"Inception"`
	Description string  `gorm:"type:text;not null" json:"description" example:"A mind-bending thriller by Christopher Nolan."`
	ImageURL    string  `gorm:"column:image_url;not null" json:"imageUrl" example:"https://link-to-image.com/inception.jpg"`
	IMDB        float64 `gorm:"column:imdb;not null" json:"imdb" example:"8.8"`
	MetaScore   float64 `gorm:"column:meta_score;not null" json:"metaScore" example:"74"`
}

func (Film) TableName() string {
	return "films"
}

// FilmFields holds the five caller-supplied fields shared by create and
// full-replace updates.
type FilmFields struct {
	Name        string
	Description string
	ImageURL    string
	IMDB        float64
	MetaScore   float64
}

// Apply copies every field onto f, leaving the ID untouched.
func (ff FilmFields) Apply(f *Film) {
	f.Name = ff.Name
	f.Description = ff.Description
	f.ImageURL = ff.ImageURL
	f.IMDB = ff.IMDB
	f.MetaScore = ff.MetaScore
}

type DeleteResponse struct {
	Message string `json:"message" example:"Film deleted successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Film not found"`
}

type PresignResponse struct {
	PresignedURL string `json:"presigned_url"`
	PublicURL    string `json:"public_url"`
}
