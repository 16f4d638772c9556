package handler

import (
	"strconv"

	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ProgramStudiHandler struct {
	repo repository.ProgramStudiRepository
}

func NewProgramStudiHandler(repo repository.ProgramStudiRepository) *ProgramStudiHandler {
	return &ProgramStudiHandler{repo: repo}
}

type ProgramStudiRequest struct {
	Nama string `json:"nama" validate:"required"`
}

func (h *ProgramStudiHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data program studi"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *ProgramStudiHandler) Create(c *fiber.Ctx) error {
	var req ProgramStudiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	prodi := model.ProgramStudi{Nama: req.Nama}
	if err := h.repo.Create(&prodi); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan program studi"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Program studi dibuat", "data": prodi})
}

func (h *ProgramStudiHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	prodi, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program studi tidak ditemukan"})
	}

	var req ProgramStudiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	prodi.Nama = req.Nama
	if err := h.repo.Update(prodi); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate program studi"})
	}
	return c.JSON(fiber.Map{"message": "Program studi diupdate", "data": prodi})
}

func (h *ProgramStudiHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus program studi"})
	}
	return c.JSON(fiber.Map{"message": "Program studi dihapus"})
}
