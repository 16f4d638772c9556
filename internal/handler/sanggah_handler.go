package handler

import (
	"errors"
	"log"
	"strconv"

	"forum-asisten-backend/internal/mailer"
	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SanggahHandler struct {
	repo      repository.SanggahRepository
	rekapRepo repository.RekapitulasiRepository
	mail      *mailer.Mailer
}

func NewSanggahHandler(repo repository.SanggahRepository, rekapRepo repository.RekapitulasiRepository, mail *mailer.Mailer) *SanggahHandler {
	return &SanggahHandler{repo: repo, rekapRepo: rekapRepo, mail: mail}
}

type SanggahRequest struct {
	IsiSanggahan string `json:"isi_sanggahan" validate:"required,min=10"`
}

// Create mencatat sanggahan asisten atas rekapitulasinya sendiri.
func (h *SanggahHandler) Create(c *fiber.Ctx) error {
	asistenID := uint(c.Locals("user_id").(float64))

	var req SanggahRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	rekap, err := h.rekapRepo.GetByAsisten(asistenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Belum ada rekapitulasi untuk disanggah"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil rekapitulasi"})
	}

	sanggah := model.Sanggah{
		RekapitulasiID: rekap.ID,
		IsiSanggahan:   req.IsiSanggahan,
	}
	if err := h.repo.Create(&sanggah); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan sanggahan"})
	}

	// Notifikasi email best-effort, kegagalan tidak membatalkan sanggahan
	if h.mail != nil && h.mail.Enabled() {
		if err := h.mail.KirimNotifSanggah(rekap.Asisten.Nama, req.IsiSanggahan); err != nil {
			log.Printf("gagal kirim notifikasi sanggah: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Sanggahan terkirim", "data": sanggah})
}

func (h *SanggahHandler) GetAll(c *fiber.Ctx) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data sanggahan"})
	}
	return c.JSON(fiber.Map{"data": rows})
}

func (h *SanggahHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	sanggah, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sanggahan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": sanggah})
}
