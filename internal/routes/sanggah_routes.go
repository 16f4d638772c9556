package routes

import (
	"forum-asisten-backend/internal/handler"
	"forum-asisten-backend/internal/mailer"
	"forum-asisten-backend/internal/middleware"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSanggahRoutes(app *fiber.App, db *gorm.DB, mail *mailer.Mailer) {
	repo := repository.NewSanggahRepository(db)
	rekapRepo := repository.NewRekapitulasiRepository(db)
	hdl := handler.NewSanggahHandler(repo, rekapRepo, mail)

	api := app.Group("/api/sanggah", middleware.Auth)
	api.Post("/", middleware.Role("asisten"), hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
}
