package repository

import (
	"forum-asisten-backend/internal/model"

	"gorm.io/gorm"
)

type JadwalRepository interface {
	GetAll() ([]model.Jadwal, error)
	GetByID(id uint) (*model.Jadwal, error)
	Create(jadwal *model.Jadwal) error
	Update(jadwal *model.Jadwal) error
	Delete(id uint) error
}

type jadwalRepository struct {
	db *gorm.DB
}

func NewJadwalRepository(db *gorm.DB) JadwalRepository {
	return &jadwalRepository{db}
}

func (r *jadwalRepository) GetAll() ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	err := r.db.Preload("Dosen").Preload("MataKuliah").Preload("MataKuliah.ProgramStudi").
		Order("hari asc").Order("jam_mulai asc").Find(&jadwals).Error
	return jadwals, err
}

func (r *jadwalRepository) GetByID(id uint) (*model.Jadwal, error) {
	var jadwal model.Jadwal
	err := r.db.Preload("Dosen").Preload("MataKuliah").Preload("MataKuliah.ProgramStudi").
		First(&jadwal, id).Error
	if err != nil {
		return nil, err
	}
	return &jadwal, nil
}

func (r *jadwalRepository) Create(jadwal *model.Jadwal) error {
	return r.db.Create(jadwal).Error
}

func (r *jadwalRepository) Update(jadwal *model.Jadwal) error {
	return r.db.Save(jadwal).Error
}

func (r *jadwalRepository) Delete(id uint) error {
	return r.db.Delete(&model.Jadwal{}, id).Error
}
