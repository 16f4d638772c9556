package handler

import (
	"strconv"

	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DosenHandler struct {
	repo repository.DosenRepository
}

func NewDosenHandler(repo repository.DosenRepository) *DosenHandler {
	return &DosenHandler{repo: repo}
}

type DosenRequest struct {
	Nama string `json:"nama" validate:"required"`
	NIP  string `json:"nip"`
}

func (h *DosenHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dosen"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *DosenHandler) Create(c *fiber.Ctx) error {
	var req DosenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	dosen := model.Dosen{Nama: req.Nama, NIP: req.NIP}
	if err := h.repo.Create(&dosen); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan dosen"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Dosen dibuat", "data": dosen})
}

func (h *DosenHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	dosen, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dosen tidak ditemukan"})
	}

	var req DosenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	dosen.Nama = req.Nama
	dosen.NIP = req.NIP
	if err := h.repo.Update(dosen); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate dosen"})
	}
	return c.JSON(fiber.Map{"message": "Dosen diupdate", "data": dosen})
}

func (h *DosenHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus dosen"})
	}
	return c.JSON(fiber.Map{"message": "Dosen dihapus"})
}
