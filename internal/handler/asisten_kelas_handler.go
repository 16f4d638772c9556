package handler

import (
	"strconv"

	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// MaksAsistenPerJadwal: kuota plotingan per jadwal. Lebih dari ini ditolak
// dengan 409, bukan error server.
const MaksAsistenPerJadwal = 2

type AsistenKelasHandler struct {
	repo     repository.AsistenKelasRepository
	userRepo repository.UserRepository
}

func NewAsistenKelasHandler(repo repository.AsistenKelasRepository, userRepo repository.UserRepository) *AsistenKelasHandler {
	return &AsistenKelasHandler{repo: repo, userRepo: userRepo}
}

type PilihJadwalRequest struct {
	JadwalID uint `json:"jadwal_id" validate:"required"`
	// Hanya dipakai admin saat memploting asisten lain
	AsistenID uint `json:"asisten_id"`
}

func (h *AsistenKelasHandler) daftarkan(c *fiber.Ctx, jadwalID, asistenID uint) error {
	// 1. Cek duplikat
	sudahAda, err := h.repo.ExistsByJadwalAndAsisten(jadwalID, asistenID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengecek plotingan"})
	}
	if sudahAda {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Asisten sudah terdaftar di jadwal ini"})
	}

	// 2. Cek kuota
	jumlah, err := h.repo.CountByJadwal(jadwalID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengecek kuota"})
	}
	if jumlah >= MaksAsistenPerJadwal {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Kuota asisten untuk jadwal ini sudah penuh"})
	}

	// 3. Ambil NIM asisten untuk disimpan di plotingan
	asisten, err := h.userRepo.FindByID(asistenID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asisten tidak ditemukan"})
	}
	nim := ""
	if asisten.NIM != nil {
		nim = *asisten.NIM
	}

	data := model.AsistenKelas{JadwalID: jadwalID, AsistenID: asistenID, NIM: nim}
	if err := h.repo.Create(&data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memilih jadwal"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Berhasil memilih jadwal", "data": data})
}

// Pilih dipakai asisten untuk memploting dirinya sendiri.
func (h *AsistenKelasHandler) Pilih(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != "asisten" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Hanya asisten yang dapat memilih jadwal"})
	}
	asistenID := uint(c.Locals("user_id").(float64))

	var req PilihJadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	return h.daftarkan(c, req.JadwalID, asistenID)
}

// AdminPilih dipakai admin untuk memploting asisten manapun.
func (h *AsistenKelasHandler) AdminPilih(c *fiber.Ctx) error {
	var req PilihJadwalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}
	if req.AsistenID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "asisten_id wajib diisi"})
	}

	return h.daftarkan(c, req.JadwalID, req.AsistenID)
}

// GetMine mengembalikan plotingan milik user yang sedang login; admin
// mendapat semua plotingan.
func (h *AsistenKelasHandler) GetMine(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role == "admin" {
		list, err := h.repo.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data plotingan"})
		}
		return c.JSON(fiber.Map{"data": list})
	}

	asistenID := uint(c.Locals("user_id").(float64))
	list, err := h.repo.GetByAsisten(asistenID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data plotingan"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *AsistenKelasHandler) GetByUser(c *fiber.Ctx) error {
	userID, _ := strconv.Atoi(c.Params("user_id"))
	list, err := h.repo.GetByAsisten(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data plotingan"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// Delete melepas plotingan. Asisten hanya boleh melepas miliknya sendiri.
func (h *AsistenKelasHandler) Delete(c *fiber.Ctx) error {
	jadwalID, _ := strconv.Atoi(c.Params("jadwal_id"))
	asistenID, _ := strconv.Atoi(c.Params("asisten_id"))

	role, _ := c.Locals("role").(string)
	if role != "admin" {
		pemilik := uint(c.Locals("user_id").(float64))
		if pemilik != uint(asistenID) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Tidak boleh melepas plotingan asisten lain"})
		}
	}

	if err := h.repo.DeleteByJadwalAndAsisten(uint(jadwalID), uint(asistenID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus plotingan"})
	}
	return c.JSON(fiber.Map{"message": "Plotingan berhasil dihapus"})
}
