package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret dipakai handler auth DAN middleware, harus sama persis.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia_forum_asisten"))
}

// Batas ukuran file upload. Bukti presensi dan foto profil sengaja dipisah
// karena limitnya memang beda (5 MB vs 10 MB).
func MaxBuktiBytes() int64 {
	return int64(GetEnvAsInt("MAX_BUKTI_MB", 5)) * 1024 * 1024
}

func MaxFotoProfilBytes() int64 {
	return int64(GetEnvAsInt("MAX_FOTO_PROFIL_MB", 10)) * 1024 * 1024
}

// HonorRates adalah satu-satunya sumber tarif honor per pertemuan.
// Dipakai handler rekapitulasi, export laporan, dan seeder.
func HonorRates() map[string]int {
	return map[string]int{
		"A": GetEnvAsInt("HONOR_TIPE_A", 12500),
		"B": GetEnvAsInt("HONOR_TIPE_B", 14500),
		"C": GetEnvAsInt("HONOR_TIPE_C", 16500),
		"D": GetEnvAsInt("HONOR_TIPE_D", 22500),
		"E": GetEnvAsInt("HONOR_TIPE_E", 24500),
	}
}
