package model

import "time"

type ProgramStudi struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nama      string    `json:"nama" gorm:"unique;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type MataKuliah struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	Nama           string       `json:"nama" gorm:"not null"`
	Kode           string       `json:"kode" gorm:"unique;not null"`
	Semester       uint         `json:"semester" gorm:"not null"`
	ProgramStudiID uint         `json:"program_studi_id"`
	ProgramStudi   ProgramStudi `json:"program_studi" gorm:"foreignKey:ProgramStudiID"`
	CreatedAt      time.Time    `json:"-"`
	UpdatedAt      time.Time    `json:"-"`
}

type Dosen struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Nama string `json:"nama" gorm:"not null"`
	NIP  string `json:"nip" gorm:"unique"`
}
