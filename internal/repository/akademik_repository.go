package repository

import (
	"forum-asisten-backend/internal/model"

	"gorm.io/gorm"
)

type ProgramStudiRepository interface {
	GetAll() ([]model.ProgramStudi, error)
	GetByID(id uint) (*model.ProgramStudi, error)
	Create(prodi *model.ProgramStudi) error
	Update(prodi *model.ProgramStudi) error
	Delete(id uint) error
}

type programStudiRepository struct {
	db *gorm.DB
}

func NewProgramStudiRepository(db *gorm.DB) ProgramStudiRepository {
	return &programStudiRepository{db}
}

func (r *programStudiRepository) GetAll() ([]model.ProgramStudi, error) {
	var list []model.ProgramStudi
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}

func (r *programStudiRepository) GetByID(id uint) (*model.ProgramStudi, error) {
	var prodi model.ProgramStudi
	err := r.db.First(&prodi, id).Error
	return &prodi, err
}

func (r *programStudiRepository) Create(prodi *model.ProgramStudi) error {
	return r.db.Create(prodi).Error
}

func (r *programStudiRepository) Update(prodi *model.ProgramStudi) error {
	return r.db.Save(prodi).Error
}

func (r *programStudiRepository) Delete(id uint) error {
	return r.db.Delete(&model.ProgramStudi{}, id).Error
}

type MataKuliahRepository interface {
	GetAll() ([]model.MataKuliah, error)
	GetByID(id uint) (*model.MataKuliah, error)
	Create(mk *model.MataKuliah) error
	Update(mk *model.MataKuliah) error
	Delete(id uint) error
}

type mataKuliahRepository struct {
	db *gorm.DB
}

func NewMataKuliahRepository(db *gorm.DB) MataKuliahRepository {
	return &mataKuliahRepository{db}
}

func (r *mataKuliahRepository) GetAll() ([]model.MataKuliah, error) {
	var list []model.MataKuliah
	err := r.db.Preload("ProgramStudi").Order("nama asc").Find(&list).Error
	return list, err
}

func (r *mataKuliahRepository) GetByID(id uint) (*model.MataKuliah, error) {
	var mk model.MataKuliah
	err := r.db.Preload("ProgramStudi").First(&mk, id).Error
	return &mk, err
}

func (r *mataKuliahRepository) Create(mk *model.MataKuliah) error {
	return r.db.Create(mk).Error
}

func (r *mataKuliahRepository) Update(mk *model.MataKuliah) error {
	return r.db.Save(mk).Error
}

func (r *mataKuliahRepository) Delete(id uint) error {
	return r.db.Delete(&model.MataKuliah{}, id).Error
}

type DosenRepository interface {
	GetAll() ([]model.Dosen, error)
	GetByID(id uint) (*model.Dosen, error)
	Create(dosen *model.Dosen) error
	Update(dosen *model.Dosen) error
	Delete(id uint) error
}

type dosenRepository struct {
	db *gorm.DB
}

func NewDosenRepository(db *gorm.DB) DosenRepository {
	return &dosenRepository{db}
}

func (r *dosenRepository) GetAll() ([]model.Dosen, error) {
	var list []model.Dosen
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}

func (r *dosenRepository) GetByID(id uint) (*model.Dosen, error) {
	var dosen model.Dosen
	err := r.db.First(&dosen, id).Error
	return &dosen, err
}

func (r *dosenRepository) Create(dosen *model.Dosen) error {
	return r.db.Create(dosen).Error
}

func (r *dosenRepository) Update(dosen *model.Dosen) error {
	return r.db.Save(dosen).Error
}

func (r *dosenRepository) Delete(id uint) error {
	return r.db.Delete(&model.Dosen{}, id).Error
}
