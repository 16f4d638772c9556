package model

type Jadwal struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	MataKuliahID uint       `json:"mata_kuliah_id"`
	DosenID      uint       `json:"dosen_id"`
	Hari         string     `json:"hari"`        // "senin".."sabtu", huruf kecil
	JamMulai     string     `json:"jam_mulai"`   // format "08:00"
	JamSelesai   string     `json:"jam_selesai"` // format "10:00"
	Lab          string     `json:"lab"`
	Kelas        string     `json:"kelas"`
	Semester     int        `json:"semester"`
	MataKuliah   MataKuliah `json:"mata_kuliah" gorm:"foreignKey:MataKuliahID"`
	Dosen        Dosen      `json:"dosen" gorm:"foreignKey:DosenID"`
}

// AsistenKelas adalah plotingan: satu asisten yang mengambil satu jadwal.
// Maksimal 2 asisten per jadwal, dicek di handler sebelum create.
type AsistenKelas struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	JadwalID  uint   `json:"jadwal_id"`
	AsistenID uint   `json:"asisten_id"`
	NIM       string `json:"nim"`

	Jadwal Jadwal `json:"jadwal" gorm:"foreignKey:JadwalID"`
	User   User   `json:"user" gorm:"foreignKey:AsistenID"`
}
