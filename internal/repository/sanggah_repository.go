package repository

import (
	"forum-asisten-backend/internal/model"

	"gorm.io/gorm"
)

type SanggahRepository interface {
	Create(sanggah *model.Sanggah) error
	GetAll() ([]model.Sanggah, error)
	GetByID(id uint) (*model.Sanggah, error)
}

type sanggahRepository struct {
	db *gorm.DB
}

func NewSanggahRepository(db *gorm.DB) SanggahRepository {
	return &sanggahRepository{db}
}

func (r *sanggahRepository) Create(sanggah *model.Sanggah) error {
	return r.db.Create(sanggah).Error
}

func (r *sanggahRepository) GetAll() ([]model.Sanggah, error) {
	var list []model.Sanggah
	err := r.db.Preload("Rekapitulasi").Preload("Rekapitulasi.Asisten").
		Order("waktu desc").Find(&list).Error
	return list, err
}

func (r *sanggahRepository) GetByID(id uint) (*model.Sanggah, error) {
	var sanggah model.Sanggah
	err := r.db.Preload("Rekapitulasi").Preload("Rekapitulasi.Asisten").
		First(&sanggah, id).Error
	if err != nil {
		return nil, err
	}
	return &sanggah, nil
}
