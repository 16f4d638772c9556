package routes

import (
	"forum-asisten-backend/internal/handler"
	"forum-asisten-backend/internal/middleware"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAsistenKelasRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAsistenKelasRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewAsistenKelasHandler(repo, userRepo)

	api := app.Group("/api/asisten-kelas", middleware.Auth)
	api.Get("/", hdl.GetMine)
	api.Post("/", hdl.Pilih)
	api.Delete("/:jadwal_id/:asisten_id", hdl.Delete)

	admin := app.Group("/api/admin/asisten-kelas", middleware.Auth, middleware.Role("admin"))
	admin.Get("/:user_id", hdl.GetByUser)
	admin.Post("/", hdl.AdminPilih)
	admin.Delete("/:jadwal_id/:asisten_id", hdl.Delete)
}
