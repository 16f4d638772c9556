package routes

import (
	"forum-asisten-backend/internal/handler"
	"forum-asisten-backend/internal/middleware"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewUserHandler(repo)

	admin := app.Group("/api/admin/users", middleware.Auth, middleware.Role("admin"))
	admin.Get("/", hdl.GetAll)
	admin.Get("/asisten", hdl.GetAsisten)
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Put("/:id/status", hdl.UpdateStatus)
	admin.Delete("/:id", hdl.Delete)
}
