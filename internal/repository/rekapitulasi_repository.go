package repository

import (
	"forum-asisten-backend/internal/model"

	"gorm.io/gorm"
)

type RekapitulasiRepository interface {
	GetAll() ([]model.Rekapitulasi, error)
	GetByAsisten(asistenID uint) (*model.Rekapitulasi, error)
	ExistsWithHonor(asistenID uint) (bool, error)
	// Save membuat baris baru saat ID masih nol, selain itu update.
	Save(rekap *model.Rekapitulasi) error
	Delete(id uint) error
}

type rekapitulasiRepository struct {
	db *gorm.DB
}

func NewRekapitulasiRepository(db *gorm.DB) RekapitulasiRepository {
	return &rekapitulasiRepository{db}
}

func (r *rekapitulasiRepository) GetAll() ([]model.Rekapitulasi, error) {
	var list []model.Rekapitulasi
	err := r.db.Preload("Asisten").Find(&list).Error
	return list, err
}

func (r *rekapitulasiRepository) GetByAsisten(asistenID uint) (*model.Rekapitulasi, error) {
	var rekap model.Rekapitulasi
	err := r.db.Preload("Asisten").Where("asisten_id = ?", asistenID).First(&rekap).Error
	if err != nil {
		return nil, err
	}
	return &rekap, nil
}

// ExistsWithHonor mengecek apakah asisten sudah punya penetapan tipe honor.
// Baris rekap yang dibuat otomatis oleh presensi (tipe masih kosong) tidak
// dihitung sebagai penetapan.
func (r *rekapitulasiRepository) ExistsWithHonor(asistenID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Rekapitulasi{}).
		Where("asisten_id = ? AND tipe_honor <> ''", asistenID).Count(&count).Error
	return count > 0, err
}

func (r *rekapitulasiRepository) Save(rekap *model.Rekapitulasi) error {
	return r.db.Save(rekap).Error
}

func (r *rekapitulasiRepository) Delete(id uint) error {
	return r.db.Delete(&model.Rekapitulasi{}, id).Error
}
