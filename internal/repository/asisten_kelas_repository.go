package repository

import (
	"forum-asisten-backend/internal/model"

	"gorm.io/gorm"
)

type AsistenKelasRepository interface {
	Create(data *model.AsistenKelas) error
	GetAll() ([]model.AsistenKelas, error)
	GetByAsisten(asistenID uint) ([]model.AsistenKelas, error)
	CountByJadwal(jadwalID uint) (int64, error)
	ExistsByJadwalAndAsisten(jadwalID, asistenID uint) (bool, error)
	DeleteByJadwalAndAsisten(jadwalID, asistenID uint) error
}

type asistenKelasRepository struct {
	db *gorm.DB
}

func NewAsistenKelasRepository(db *gorm.DB) AsistenKelasRepository {
	return &asistenKelasRepository{db}
}

func (r *asistenKelasRepository) Create(data *model.AsistenKelas) error {
	return r.db.Create(data).Error
}

func (r *asistenKelasRepository) GetAll() ([]model.AsistenKelas, error) {
	var list []model.AsistenKelas
	err := r.db.Preload("Jadwal").Preload("Jadwal.MataKuliah").
		Preload("Jadwal.MataKuliah.ProgramStudi").Preload("Jadwal.Dosen").
		Preload("User").Find(&list).Error
	return list, err
}

func (r *asistenKelasRepository) GetByAsisten(asistenID uint) ([]model.AsistenKelas, error) {
	var list []model.AsistenKelas
	err := r.db.Where("asisten_id = ?", asistenID).
		Preload("Jadwal").Preload("Jadwal.MataKuliah").
		Preload("Jadwal.MataKuliah.ProgramStudi").Preload("Jadwal.Dosen").
		Find(&list).Error
	return list, err
}

func (r *asistenKelasRepository) CountByJadwal(jadwalID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.AsistenKelas{}).Where("jadwal_id = ?", jadwalID).Count(&count).Error
	return count, err
}

func (r *asistenKelasRepository) ExistsByJadwalAndAsisten(jadwalID, asistenID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.AsistenKelas{}).
		Where("jadwal_id = ? AND asisten_id = ?", jadwalID, asistenID).Count(&count).Error
	return count > 0, err
}

func (r *asistenKelasRepository) DeleteByJadwalAndAsisten(jadwalID, asistenID uint) error {
	return r.db.Where("jadwal_id = ? AND asisten_id = ?", jadwalID, asistenID).
		Delete(&model.AsistenKelas{}).Error
}
