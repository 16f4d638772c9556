package routes

import (
	"forum-asisten-backend/internal/handler"
	"forum-asisten-backend/internal/middleware"
	"forum-asisten-backend/internal/repository"
	"forum-asisten-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, store storage.AssetStore) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(userRepo, store)

	app.Post("/api/login", hdl.Login)

	api := app.Group("/api", middleware.Auth)
	api.Get("/profile", hdl.GetProfile)
	api.Post("/profile/photo", hdl.UpdateProfilePhoto)
}
