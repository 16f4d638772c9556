package database

import (
	"log"

	"forum-asisten-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func SeedAll(db *gorm.DB) {
	// 1. Seed Program Studi
	prodi := model.ProgramStudi{Nama: "Teknik Informatika"}
	db.FirstOrCreate(&prodi, model.ProgramStudi{Nama: prodi.Nama})

	prodiSI := model.ProgramStudi{Nama: "Sistem Informasi"}
	db.FirstOrCreate(&prodiSI, model.ProgramStudi{Nama: prodiSI.Nama})

	// 2. Seed Mata Kuliah
	matkuls := []model.MataKuliah{
		{Kode: "IF2110", Nama: "Algoritma dan Struktur Data", Semester: 3, ProgramStudiID: prodi.ID},
		{Kode: "IF2230", Nama: "Basis Data", Semester: 3, ProgramStudiID: prodi.ID},
		{Kode: "SI2101", Nama: "Analisis Proses Bisnis", Semester: 2, ProgramStudiID: prodiSI.ID},
	}
	for i := range matkuls {
		db.FirstOrCreate(&matkuls[i], model.MataKuliah{Kode: matkuls[i].Kode})
	}

	// 3. Seed Dosen
	dosens := []model.Dosen{
		{Nama: "Dr. Budi Santoso", NIP: "197501012000031001"},
		{Nama: "Ir. Siti Rahmawati, M.T.", NIP: "198203152008122002"},
	}
	for i := range dosens {
		db.FirstOrCreate(&dosens[i], model.Dosen{NIP: dosens[i].NIP})
	}

	// 4. Seed Jadwal Contoh
	jadwals := []model.Jadwal{
		{Hari: "senin", JamMulai: "08:00", JamSelesai: "10:00", Lab: "Lab RPL", Kelas: "IF-A", Semester: 3, MataKuliahID: matkuls[0].ID, DosenID: dosens[0].ID},
		{Hari: "rabu", JamMulai: "13:00", JamSelesai: "15:00", Lab: "Lab Basis Data", Kelas: "IF-B", Semester: 3, MataKuliahID: matkuls[1].ID, DosenID: dosens[1].ID},
	}
	for i := range jadwals {
		db.FirstOrCreate(&jadwals[i], model.Jadwal{
			Hari:         jadwals[i].Hari,
			JamMulai:     jadwals[i].JamMulai,
			Kelas:        jadwals[i].Kelas,
			MataKuliahID: jadwals[i].MataKuliahID,
		})
	}

	// 5. Seed Akun Admin Pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	admin := model.User{
		Nama:     "Administrator Forum Asisten",
		Email:    "admin@forum-asisten.ac.id",
		Password: string(hashedPassword),
		Role:     "admin",
		Status:   "aktif",
	}
	result := db.FirstOrCreate(&admin, model.User{Email: admin.Email})
	if result.Error == nil {
		// Paksa update password agar selalu sinkron dengan "admin123" meskipun user sudah ada
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeding Admin berhasil!")
	}

	// 6. Seed Asisten Contoh
	asistenPassword, _ := bcrypt.GenerateFromPassword([]byte("asisten123"), bcrypt.DefaultCost)
	asisten := model.User{
		Nama:     "Andi Pratama",
		Email:    "andi.pratama@student.ac.id",
		Password: string(asistenPassword),
		Role:     "asisten",
		NIM:      strPtr("10121001"),
		Status:   "aktif",
	}
	db.FirstOrCreate(&asisten, model.User{Email: asisten.Email})

	log.Println("Seeding selesai.")
}
