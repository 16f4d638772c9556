package routes

import (
	"forum-asisten-backend/internal/handler"
	"forum-asisten-backend/internal/middleware"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAkademikRoutes(app *fiber.App, db *gorm.DB) {
	prodiHdl := handler.NewProgramStudiHandler(repository.NewProgramStudiRepository(db))
	matkulHdl := handler.NewMataKuliahHandler(repository.NewMataKuliahRepository(db))
	dosenHdl := handler.NewDosenHandler(repository.NewDosenRepository(db))

	// Daftar referensi bisa dibaca semua user login
	api := app.Group("/api", middleware.Auth)
	api.Get("/program-studi", prodiHdl.GetAll)
	api.Get("/mata-kuliah", matkulHdl.GetAll)
	api.Get("/dosen", dosenHdl.GetAll)

	admin := app.Group("/api/admin", middleware.Auth, middleware.Role("admin"))

	admin.Post("/program-studi", prodiHdl.Create)
	admin.Put("/program-studi/:id", prodiHdl.Update)
	admin.Delete("/program-studi/:id", prodiHdl.Delete)

	admin.Post("/mata-kuliah", matkulHdl.Create)
	admin.Put("/mata-kuliah/:id", matkulHdl.Update)
	admin.Delete("/mata-kuliah/:id", matkulHdl.Delete)

	admin.Post("/dosen", dosenHdl.Create)
	admin.Put("/dosen/:id", dosenHdl.Update)
	admin.Delete("/dosen/:id", dosenHdl.Delete)
}
