package config

import (
	"fmt"
	"forum-asisten-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	user := GetEnv("DB_USER", "root")
	pass := GetEnv("DB_PASS", "")
	host := GetEnv("DB_HOST", "127.0.0.1")
	port := GetEnv("DB_PORT", "3306")
	dbname := GetEnv("DB_NAME", "forum_asisten")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbname)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database: " + err.Error())
	}

	fmt.Println("Koneksi database berhasil!")

	// Auto migration berdasarkan struct di internal/model
	db.AutoMigrate(
		&model.ProgramStudi{},
		&model.MataKuliah{},
		&model.Dosen{},
		&model.Jadwal{},
		&model.User{},
		&model.AsistenKelas{},
		&model.Presensi{},
		&model.Rekapitulasi{},
		&model.Sanggah{},
	)

	DB = db
}
