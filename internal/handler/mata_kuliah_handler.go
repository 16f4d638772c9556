package handler

import (
	"strconv"

	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type MataKuliahHandler struct {
	repo repository.MataKuliahRepository
}

func NewMataKuliahHandler(repo repository.MataKuliahRepository) *MataKuliahHandler {
	return &MataKuliahHandler{repo: repo}
}

type MataKuliahRequest struct {
	Nama           string `json:"nama" validate:"required"`
	Kode           string `json:"kode" validate:"required"`
	Semester       uint   `json:"semester" validate:"required"`
	ProgramStudiID uint   `json:"program_studi_id" validate:"required"`
}

func (h *MataKuliahHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data mata kuliah"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *MataKuliahHandler) Create(c *fiber.Ctx) error {
	var req MataKuliahRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	mk := model.MataKuliah{
		Nama:           req.Nama,
		Kode:           req.Kode,
		Semester:       req.Semester,
		ProgramStudiID: req.ProgramStudiID,
	}
	if err := h.repo.Create(&mk); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan mata kuliah, kode mungkin sudah dipakai"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Mata kuliah dibuat", "data": mk})
}

func (h *MataKuliahHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	mk, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mata kuliah tidak ditemukan"})
	}

	var req MataKuliahRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	mk.Nama = req.Nama
	mk.Kode = req.Kode
	mk.Semester = req.Semester
	mk.ProgramStudiID = req.ProgramStudiID

	if err := h.repo.Update(mk); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate mata kuliah"})
	}
	return c.JSON(fiber.Map{"message": "Mata kuliah diupdate", "data": mk})
}

func (h *MataKuliahHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus mata kuliah"})
	}
	return c.JSON(fiber.Map{"message": "Mata kuliah dihapus"})
}
