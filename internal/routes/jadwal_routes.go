package routes

import (
	"forum-asisten-backend/internal/handler"
	"forum-asisten-backend/internal/middleware"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJadwalRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewJadwalRepository(db)
	hdl := handler.NewJadwalHandler(repo)

	// Jadwal publik supaya calon asisten bisa lihat sebelum login
	app.Get("/api/jadwal", hdl.GetAll)

	admin := app.Group("/api/admin/jadwal", middleware.Auth, middleware.Role("admin"))
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}
