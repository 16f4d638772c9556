package handler

import (
	"errors"
	"mime/multipart"
	"strconv"
	"time"

	"forum-asisten-backend/config"
	"forum-asisten-backend/internal/model"
	"forum-asisten-backend/internal/repository"
	"forum-asisten-backend/internal/service"
	"forum-asisten-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PresensiHandler struct {
	repo             repository.PresensiRepository
	asistenKelasRepo repository.AsistenKelasRepository
	store            storage.AssetStore
}

func NewPresensiHandler(repo repository.PresensiRepository, asistenKelasRepo repository.AsistenKelasRepository, store storage.AssetStore) *PresensiHandler {
	return &PresensiHandler{repo: repo, asistenKelasRepo: asistenKelasRepo, store: store}
}

// GetSekarang memilih jadwal yang sedang berada di jendela presensi untuk
// asisten yang login. Tidak ada jadwal bukan error: frontend menampilkan
// empty state dengan opsi presensi di luar jendela.
func (h *PresensiHandler) GetSekarang(c *fiber.Ctx) error {
	asistenID := uint(c.Locals("user_id").(float64))

	plotingan, err := h.asistenKelasRepo.GetByAsisten(asistenID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data plotingan"})
	}

	sekarang := service.SelectCurrentSchedule(plotingan, time.Now())
	if sekarang == nil {
		return c.JSON(fiber.Map{
			"message": "Tidak ada jadwal di jendela presensi saat ini",
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Jadwal ditemukan",
		"data":    sekarang,
	})
}

func infoDariHeader(fh *multipart.FileHeader) *service.FileInfo {
	if fh == nil {
		return nil
	}
	return &service.FileInfo{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}
}

func (h *PresensiHandler) uploadBukti(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", storage.ErrUpload
	}
	defer src.Close()
	return h.store.Save(fh.Filename, fh.Header.Get("Content-Type"), fh.Size, src)
}

// Create menerima form multipart: jadwal_id, jenis, status, isi_materi,
// plus file bukti_kehadiran atau bukti_izin. Urutannya ketat: validasi
// lokal dulu, upload bukti, baru simpan record. Upload gagal = tidak ada
// record yang dibuat.
func (h *PresensiHandler) Create(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != "asisten" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Hanya asisten yang dapat mengisi presensi"})
	}
	asistenID := uint(c.Locals("user_id").(float64))

	jadwalID, err := strconv.Atoi(c.FormValue("jadwal_id"))
	if err != nil || jadwalID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jadwal_id wajib diisi"})
	}

	jenis := c.FormValue("jenis", service.JenisUtama)
	if jenis != service.JenisUtama && jenis != service.JenisPengganti {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jenis presensi tidak valid"})
	}

	status := c.FormValue("status")
	isiMateri := c.FormValue("isi_materi")

	// File opsional tergantung status; nil kalau tidak dilampirkan
	buktiKehadiran, _ := c.FormFile("bukti_kehadiran")
	buktiIzin, _ := c.FormFile("bukti_izin")

	// 1. Validasi lokal sebelum ada network call apapun
	input := service.SubmissionInput{
		Status:         status,
		BuktiKehadiran: infoDariHeader(buktiKehadiran),
		BuktiIzin:      infoDariHeader(buktiIzin),
		IsiMateri:      isiMateri,
	}
	if err := service.ValidateSubmission(input, config.MaxBuktiBytes()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// 2. Upload bukti ke asset store; gagal upload membatalkan submit
	presensi := model.Presensi{
		JadwalID:  uint(jadwalID),
		AsistenID: asistenID,
		Jenis:     jenis,
		Status:    status,
		IsiMateri: isiMateri,
	}
	switch status {
	case service.StatusHadir:
		url, err := h.uploadBukti(buktiKehadiran)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}
		presensi.BuktiKehadiran = url
	case service.StatusIzin:
		url, err := h.uploadBukti(buktiIzin)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}
		presensi.BuktiIzin = url
	}

	// 3. Simpan presensi + update counter rekap dalam satu transaksi
	if err := h.repo.CreateWithRekap(&presensi); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan presensi"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Presensi berhasil disimpan",
		"data":    presensi,
	})
}

// GetAll: admin melihat semua presensi, asisten hanya miliknya.
func (h *PresensiHandler) GetAll(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	var (
		list []model.Presensi
		err  error
	)
	if role == "admin" {
		list, err = h.repo.GetAll()
	} else {
		asistenID := uint(c.Locals("user_id").(float64))
		list, err = h.repo.GetByAsisten(asistenID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data presensi"})
	}
	return c.JSON(fiber.Map{"data": list})
}

type UpdatePresensiRequest struct {
	Status string `json:"status" validate:"required,oneof=hadir izin alpha"`
}

// UpdateStatus adalah koreksi status oleh admin. Counter rekapitulasi
// digeser dari status lama ke status baru dalam satu transaksi.
func (h *PresensiHandler) UpdateStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdatePresensiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": formatValidationErrors(err)})
	}

	presensi, err := h.repo.UpdateStatusWithRekap(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Presensi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui presensi"})
	}

	return c.JSON(fiber.Map{"message": "Status presensi berhasil diperbarui", "data": presensi})
}

func (h *PresensiHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.DeleteWithRekap(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Presensi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus presensi"})
	}

	return c.JSON(fiber.Map{"message": "Presensi berhasil dihapus"})
}
