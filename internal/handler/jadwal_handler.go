package handler

import (
	"strconv"
	"time"

	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type JadwalHandler struct {
	repo repository.JadwalRepository
}

func NewJadwalHandler(repo repository.JadwalRepository) *JadwalHandler {
	return &JadwalHandler{repo: repo}
}

type JadwalRequest struct {
	MataKuliahID uint   `json:"mata_kuliah_id" validate:"required"`
	DosenID      uint   `json:"dosen_id" validate:"required"`
	Hari         string `json:"hari" validate:"required,oneof=senin selasa rabu kamis jumat sabtu"`
	JamMulai     string `json:"jam_mulai" validate:"required"`
	JamSelesai   string `json:"jam_selesai" validate:"required"`
	Lab          string `json:"lab" validate:"required"`
	Kelas        string `json:"kelas" validate:"required"`
	Semester     int    `json:"semester" validate:"required"`
}

// validasiJam memastikan format HH:MM dan jam mulai < jam selesai.
// Jadwal yang melewati tengah malam tidak didukung.
func validasiJam(mulai, selesai string) string {
	if _, err := time.Parse("15:04", mulai); err != nil {
		return "Format jam_mulai harus HH:MM"
	}
	if _, err := time.Parse("15:04", selesai); err != nil {
		return "Format jam_selesai harus HH:MM"
	}
	if mulai >= selesai {
		return "jam_mulai harus lebih awal dari jam_selesai"
	}
	return ""
}

func (h *JadwalHandler) GetAll(c *fiber.Ctx) error {
	jadwals, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jadwal"})
	}
	return c.JSON(fiber.Map{"data": jadwals})
}

func (h *JadwalHandler) Create(c *fiber.Ctx) error {
	var req JadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}
	if msg := validasiJam(req.JamMulai, req.JamSelesai); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	jadwal := model.Jadwal{
		MataKuliahID: req.MataKuliahID,
		DosenID:      req.DosenID,
		Hari:         req.Hari,
		JamMulai:     req.JamMulai,
		JamSelesai:   req.JamSelesai,
		Lab:          req.Lab,
		Kelas:        req.Kelas,
		Semester:     req.Semester,
	}
	if err := h.repo.Create(&jadwal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jadwal"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Jadwal dibuat", "data": jadwal})
}

func (h *JadwalHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	jadwal, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
	}

	var req JadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}
	if msg := validasiJam(req.JamMulai, req.JamSelesai); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	jadwal.MataKuliahID = req.MataKuliahID
	jadwal.DosenID = req.DosenID
	jadwal.Hari = req.Hari
	jadwal.JamMulai = req.JamMulai
	jadwal.JamSelesai = req.JamSelesai
	jadwal.Lab = req.Lab
	jadwal.Kelas = req.Kelas
	jadwal.Semester = req.Semester

	if err := h.repo.Update(jadwal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal diupdate", "data": jadwal})
}

func (h *JadwalHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jadwal"})
	}
	return c.JSON(fiber.Map{"message": "Jadwal berhasil dihapus"})
}
