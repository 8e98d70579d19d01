package routes

import (
	"film-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, filmHandler *handlers.FilmHandler, uploadHandler *handlers.UploadHandler) {
	api := app.Group("/api")

	films := api.Group("/films")
	{
		films.Get("/", filmHandler.GetAllFilms)
		films.Get("/:id", filmHandler.GetFilmByID)
		films.Post("/", filmHandler.CreateFilm)
		films.Put("/:id", filmHandler.UpdateFilm)
		films.Delete("/:id", filmHandler.DeleteFilm)
	}

	upload := api.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
