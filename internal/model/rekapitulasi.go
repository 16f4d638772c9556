package model

import "time"

// Rekapitulasi menyimpan penetapan tipe honor per asisten beserta counter
// kehadiran yang di-maintain setiap presensi dibuat/dikoreksi/dihapus.
type Rekapitulasi struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	AsistenID       uint   `json:"asisten_id" gorm:"uniqueIndex"`
	JumlahHadir     int    `json:"jumlah_hadir"`
	JumlahIzin      int    `json:"jumlah_izin"`
	JumlahAlpha     int    `json:"jumlah_alpha"`
	JumlahPengganti int    `json:"jumlah_pengganti"`
	TipeHonor       string `json:"tipe_honor"` // A, B, C, D, E
	HonorPertemuan  int    `json:"honor_pertemuan"`
	TotalHonor      int    `json:"total_honor"`
	Asisten         User   `json:"asisten" gorm:"foreignKey:AsistenID"`
}

func (Rekapitulasi) TableName() string {
	return "rekapitulasi"
}

// Sanggah adalah keberatan asisten atas isi rekapitulasinya.
type Sanggah struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	RekapitulasiID uint      `json:"rekapitulasi_id" gorm:"not null"`
	IsiSanggahan   string    `json:"isi_sanggahan" gorm:"type:text;not null"`
	Waktu          time.Time `json:"waktu" gorm:"autoCreateTime"`

	Rekapitulasi Rekapitulasi `json:"rekapitulasi" gorm:"foreignKey:RekapitulasiID;references:ID"`
}

func (Sanggah) TableName() string {
	return "sanggah"
}
