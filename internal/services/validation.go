package services

import (
	"errors"
	"reflect"
	"strings"

	"film-catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

// filmInput mirrors models.FilmFields with presence rules. "required" rejects
// empty strings and zero numbers alike.
type filmInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	IMDB        float64 `json:"imdb" validate:"required"`
	MetaScore   float64 `json:"metaScore" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateFields returns a validation FilmError naming every missing field,
// or nil when all five are present.
func validateFields(v *validator.Validate, fields models.FilmFields) error {
	input := filmInput{
		Name:        fields.Name,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		IMDB:        fields.IMDB,
		MetaScore:   fields.MetaScore,
	}

	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return validationError(err.Error(), err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return validationError("Missing required fields: "+strings.Join(missing, ", "), err)
}
