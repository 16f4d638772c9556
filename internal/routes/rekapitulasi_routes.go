package routes

import (
	"forum-asisten-backend/internal/handler"
	"forum-asisten-backend/internal/middleware"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRekapitulasiRoutes(app *fiber.App, db *gorm.DB) {
	rekapRepo := repository.NewRekapitulasiRepository(db)
	presensiRepo := repository.NewPresensiRepository(db)
	hdl := handler.NewRekapitulasiHandler(rekapRepo, presensiRepo)
	reportHdl := handler.NewReportHandler(rekapRepo)

	api := app.Group("/api", middleware.Auth)
	api.Get("/rekapitulasi", hdl.Get)

	admin := app.Group("/api/admin", middleware.Auth, middleware.Role("admin"))
	admin.Post("/rekapitulasi", hdl.SetTipeHonor)
	admin.Put("/rekapitulasi/:asisten_id", hdl.UpdateTipeHonor)
	admin.Delete("/rekapitulasi/:id", hdl.Delete)
	admin.Get("/laporan/rekapitulasi", reportHdl.ExportRekapitulasi)
}
