package handler

import (
	"errors"
	"strconv"

	"forum-asisten-backend/config"
	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"
	"forum-asisten-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RekapitulasiHandler struct {
	repo         repository.RekapitulasiRepository
	presensiRepo repository.PresensiRepository
}

func NewRekapitulasiHandler(repo repository.RekapitulasiRepository, presensiRepo repository.PresensiRepository) *RekapitulasiHandler {
	return &RekapitulasiHandler{repo: repo, presensiRepo: presensiRepo}
}

// honorAssignments mengubah baris rekapitulasi tersimpan jadi input join
// untuk mesin agregasi.
func honorAssignments(rows []model.Rekapitulasi) []service.HonorAssignment {
	honors := make([]service.HonorAssignment, 0, len(rows))
	for _, r := range rows {
		if r.TipeHonor == "" {
			continue
		}
		honors = append(honors, service.HonorAssignment{
			AsistenID:      r.AsistenID,
			TipeHonor:      r.TipeHonor,
			HonorPertemuan: r.HonorPertemuan,
		})
	}
	return honors
}

// Get mengembalikan rekapitulasi. Tanpa query group: baris tersimpan
// (admin semua, asisten miliknya). Dengan ?group=asisten|mata_kuliah|
// tipe_honor: agregasi dihitung ulang dari snapshot presensi + penetapan
// honor yang diambil bersamaan.
func (h *RekapitulasiHandler) Get(c *fiber.Ctx) error {
	group := c.Query("group")
	role, _ := c.Locals("role").(string)

	if group != "" {
		if role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Grouping hanya untuk admin"})
		}
		switch group {
		case service.GroupByAsisten, service.GroupByMataKuliah, service.GroupByTipeHonor:
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter group tidak valid"})
		}

		// Snapshot diambil lengkap dulu, baru dihitung
		records, err := h.presensiRepo.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data presensi"})
		}
		rows, err := h.repo.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rekapitulasi"})
		}

		ringkasan := service.Aggregate(records, honorAssignments(rows), group)
		return c.JSON(fiber.Map{"group": group, "data": ringkasan})
	}

	if role == "admin" {
		rows, err := h.repo.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rekapitulasi"})
		}
		return c.JSON(fiber.Map{"data": rows})
	}

	asistenID := uint(c.Locals("user_id").(float64))
	rekap, err := h.repo.GetByAsisten(asistenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Belum ada presensi maupun penetapan honor: bukan error
			return c.JSON(fiber.Map{"data": nil, "message": "Belum ada rekapitulasi"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil rekapitulasi"})
	}
	return c.JSON(fiber.Map{"data": rekap})
}

type SetTipeHonorRequest struct {
	AsistenID uint   `json:"asisten_id" validate:"required"`
	TipeHonor string `json:"tipe_honor" validate:"required,oneof=A B C D E"`
}

// SetTipeHonor menetapkan tipe honor pertama kali. Satu asisten satu
// penetapan: kalau sudah ada, tolak dengan 409 dan arahkan ke PUT.
func (h *RekapitulasiHandler) SetTipeHonor(c *fiber.Ctx) error {
	var req SetTipeHonorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	sudahAda, err := h.repo.ExistsWithHonor(req.AsistenID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengecek rekapitulasi"})
	}
	if sudahAda {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Asisten sudah punya tipe honor, gunakan update"})
	}

	tarif := config.HonorRates()[req.TipeHonor]

	// Baris rekap bisa saja sudah dibuat otomatis oleh presensi pertama
	rekap, err := h.repo.GetByAsisten(req.AsistenID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rekap = &model.Rekapitulasi{AsistenID: req.AsistenID}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil rekapitulasi"})
	}

	rekap.TipeHonor = req.TipeHonor
	rekap.HonorPertemuan = tarif
	rekap.TotalHonor = rekap.HonorPertemuan * (rekap.JumlahHadir + rekap.JumlahPengganti)

	if err := h.repo.Save(rekap); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan rekapitulasi"})
	}
	return c.JSON(fiber.Map{"message": "Tipe honor disimpan", "data": rekap})
}

type UpdateTipeHonorRequest struct {
	TipeHonor string `json:"tipe_honor" validate:"required,oneof=A B C D E"`
}

func (h *RekapitulasiHandler) UpdateTipeHonor(c *fiber.Ctx) error {
	asistenID, _ := strconv.Atoi(c.Params("asisten_id"))

	var req UpdateTipeHonorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	rekap, err := h.repo.GetByAsisten(uint(asistenID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Rekapitulasi tidak ditemukan"})
	}

	rekap.TipeHonor = req.TipeHonor
	rekap.HonorPertemuan = config.HonorRates()[req.TipeHonor]
	rekap.TotalHonor = rekap.HonorPertemuan * (rekap.JumlahHadir + rekap.JumlahPengganti)

	if err := h.repo.Save(rekap); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan rekapitulasi"})
	}
	return c.JSON(fiber.Map{"message": "Tipe honor diperbarui", "data": rekap})
}

func (h *RekapitulasiHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus rekapitulasi"})
	}
	return c.JSON(fiber.Map{"message": "Rekapitulasi dihapus"})
}
