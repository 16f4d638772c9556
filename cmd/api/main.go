package main

import (
	"fmt"

	"forum-asisten-backend/config"
	"forum-asisten-backend/internal/mailer"
	"forum-asisten-backend/internal/routes"
	"forum-asisten-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New(fiber.Config{
		BodyLimit: 15 * 1024 * 1024, // multipart bukti + foto profil
	})

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	// Serve Static Files (Agar bukti bisa dibuka via http://localhost:3000/uploads/...)
	app.Static("/uploads", "./uploads")

	// Penyimpanan bukti: default lokal, bisa dialihkan ke asset host eksternal
	var store storage.AssetStore
	if endpoint := config.GetEnv("ASSET_UPLOAD_ENDPOINT", ""); endpoint != "" {
		store = storage.NewRemoteStore(endpoint)
	} else {
		store = storage.NewLocalStore("./uploads", "/uploads")
	}

	mail := mailer.New(
		config.GetEnv("SMTP_HOST", ""),
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASS", ""),
		config.GetEnv("SMTP_FROM", "noreply@forum-asisten.ac.id"),
		config.GetEnv("ADMIN_EMAIL", ""),
	)

	routes.SetupAuthRoutes(app, config.DB, store)
	routes.SetupUserRoutes(app, config.DB)
	routes.SetupAkademikRoutes(app, config.DB)
	routes.SetupJadwalRoutes(app, config.DB)
	routes.SetupAsistenKelasRoutes(app, config.DB)
	routes.SetupPresensiRoutes(app, config.DB, store)
	routes.SetupRekapitulasiRoutes(app, config.DB)
	routes.SetupSanggahRoutes(app, config.DB, mail)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
