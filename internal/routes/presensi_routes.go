package routes

import (
	"forum-asisten-backend/internal/handler"
	"forum-asisten-backend/internal/middleware"
	"forum-asisten-backend/internal/repository"
	"forum-asisten-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPresensiRoutes(app *fiber.App, db *gorm.DB, store storage.AssetStore) {
	repo := repository.NewPresensiRepository(db)
	asistenKelasRepo := repository.NewAsistenKelasRepository(db)
	hdl := handler.NewPresensiHandler(repo, asistenKelasRepo, store)

	api := app.Group("/api/presensi", middleware.Auth)
	api.Get("/sekarang", hdl.GetSekarang)
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)

	// Koreksi dan penghapusan presensi hanya lewat admin
	admin := app.Group("/api/admin/presensi", middleware.Auth, middleware.Role("admin"))
	admin.Get("/", hdl.GetAll)
	admin.Put("/:id", hdl.UpdateStatus)
	admin.Delete("/:id", hdl.Delete)
}
