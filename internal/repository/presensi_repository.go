package repository

import (
	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/service"

	"gorm.io/gorm"
)

type PresensiRepository interface {
	GetAll() ([]model.Presensi, error)
	GetByAsisten(asistenID uint) ([]model.Presensi, error)
	// CreateWithRekap menyimpan presensi dan menaikkan counter rekapitulasi
	// asisten dalam satu transaksi.
	CreateWithRekap(presensi *model.Presensi) error
	// UpdateStatusWithRekap mengoreksi status (admin) dan menggeser counter
	// lama ke counter baru dalam satu transaksi.
	UpdateStatusWithRekap(id uint, status string) (*model.Presensi, error)
	// DeleteWithRekap menghapus presensi lalu menghitung ulang seluruh
	// counter rekapitulasi asisten dari record yang tersisa.
	DeleteWithRekap(id uint) error
}

type presensiRepository struct {
	db *gorm.DB
}

func NewPresensiRepository(db *gorm.DB) PresensiRepository {
	return &presensiRepository{db}
}

func (r *presensiRepository) GetAll() ([]model.Presensi, error) {
	var list []model.Presensi
	err := r.db.Preload("Jadwal").Preload("Jadwal.MataKuliah").
		Preload("Jadwal.MataKuliah.ProgramStudi").Preload("Jadwal.Dosen").
		Preload("Asisten").Order("waktu_input desc").Find(&list).Error
	return list, err
}

func (r *presensiRepository) GetByAsisten(asistenID uint) ([]model.Presensi, error) {
	var list []model.Presensi
	err := r.db.Where("asisten_id = ?", asistenID).
		Preload("Jadwal").Preload("Jadwal.MataKuliah").Preload("Jadwal.Dosen").
		Order("waktu_input desc").Find(&list).Error
	return list, err
}

// geserCounter menambahkan delta (+1/-1) ke counter rekap sesuai status dan
// jenis presensi. Aturannya sama dengan mesin agregasi: pengganti hanya
// dihitung kalau hadir.
func geserCounter(rekap *model.Rekapitulasi, jenis, status string, delta int) {
	switch status {
	case service.StatusHadir:
		if jenis == service.JenisPengganti {
			rekap.JumlahPengganti += delta
		} else {
			rekap.JumlahHadir += delta
		}
	case service.StatusIzin:
		if jenis == service.JenisUtama {
			rekap.JumlahIzin += delta
		}
	case service.StatusAlpha:
		if jenis == service.JenisUtama {
			rekap.JumlahAlpha += delta
		}
	}
}

func ambilAtauBuatRekap(tx *gorm.DB, asistenID uint) (*model.Rekapitulasi, error) {
	var rekap model.Rekapitulasi
	err := tx.Where("asisten_id = ?", asistenID).First(&rekap).Error
	if err == gorm.ErrRecordNotFound {
		rekap = model.Rekapitulasi{AsistenID: asistenID}
		return &rekap, nil
	}
	if err != nil {
		return nil, err
	}
	return &rekap, nil
}

func (r *presensiRepository) CreateWithRekap(presensi *model.Presensi) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(presensi).Error; err != nil {
			return err
		}

		rekap, err := ambilAtauBuatRekap(tx, presensi.AsistenID)
		if err != nil {
			return err
		}
		geserCounter(rekap, presensi.Jenis, presensi.Status, +1)
		rekap.TotalHonor = rekap.HonorPertemuan * (rekap.JumlahHadir + rekap.JumlahPengganti)

		return tx.Save(rekap).Error
	})
}

func (r *presensiRepository) UpdateStatusWithRekap(id uint, status string) (*model.Presensi, error) {
	var presensi model.Presensi
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&presensi, id).Error; err != nil {
			return err
		}

		statusLama := presensi.Status
		presensi.Status = status
		if err := tx.Save(&presensi).Error; err != nil {
			return err
		}

		if statusLama == status {
			return nil
		}

		rekap, err := ambilAtauBuatRekap(tx, presensi.AsistenID)
		if err != nil {
			return err
		}
		geserCounter(rekap, presensi.Jenis, statusLama, -1)
		geserCounter(rekap, presensi.Jenis, status, +1)
		rekap.TotalHonor = rekap.HonorPertemuan * (rekap.JumlahHadir + rekap.JumlahPengganti)

		return tx.Save(rekap).Error
	})
	if err != nil {
		return nil, err
	}
	return &presensi, nil
}

func (r *presensiRepository) DeleteWithRekap(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var presensi model.Presensi
		if err := tx.First(&presensi, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&presensi).Error; err != nil {
			return err
		}

		rekap, err := ambilAtauBuatRekap(tx, presensi.AsistenID)
		if err != nil {
			return err
		}

		// Hitung ulang dari record yang tersisa, lebih aman daripada
		// mengurangi satu counter.
		var sisa []model.Presensi
		if err := tx.Where("asisten_id = ?", presensi.AsistenID).Find(&sisa).Error; err != nil {
			return err
		}

		rekap.JumlahHadir = 0
		rekap.JumlahIzin = 0
		rekap.JumlahAlpha = 0
		rekap.JumlahPengganti = 0
		for _, p := range sisa {
			geserCounter(rekap, p.Jenis, p.Status, +1)
		}
		rekap.TotalHonor = rekap.HonorPertemuan * (rekap.JumlahHadir + rekap.JumlahPengganti)

		return tx.Save(rekap).Error
	})
}
