package handler

import (
	"fmt"
	"time"

	"forum-asisten-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	rekapRepo repository.RekapitulasiRepository
}

func NewReportHandler(rekapRepo repository.RekapitulasiRepository) *ReportHandler {
	return &ReportHandler{rekapRepo: rekapRepo}
}

// ExportRekapitulasi menghasilkan file Excel berisi seluruh rekapitulasi
// honor asisten untuk diunduh admin.
func (h *ReportHandler) ExportRekapitulasi(c *fiber.Ctx) error {
	rows, err := h.rekapRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rekapitulasi"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Rekapitulasi"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat laporan"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", "REKAPITULASI HONOR ASISTEN")
	f.MergeCell(sheet, "A1", "I1")
	f.SetCellStyle(sheet, "A1", "I1", headerStyle)
	f.SetRowHeight(sheet, 1, 25)

	headers := []string{"No", "Nama", "NIM", "Hadir", "Izin", "Alpha", "Pengganti", "Tipe Honor", "Total Honor"}
	for i, judul := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, judul)
	}
	f.SetCellStyle(sheet, "A3", "I3", headerStyle)

	totalSemua := 0
	for i, rekap := range rows {
		baris := i + 4
		nim := ""
		if rekap.Asisten.NIM != nil {
			nim = *rekap.Asisten.NIM
		}
		nilai := []interface{}{
			i + 1,
			rekap.Asisten.Nama,
			nim,
			rekap.JumlahHadir,
			rekap.JumlahIzin,
			rekap.JumlahAlpha,
			rekap.JumlahPengganti,
			rekap.TipeHonor,
			rekap.TotalHonor,
		}
		for j, v := range nilai {
			cell, _ := excelize.CoordinatesToCellName(j+1, baris)
			f.SetCellValue(sheet, cell, v)
		}
		totalSemua += rekap.TotalHonor
	}

	barisTotal := len(rows) + 5
	cellLabel, _ := excelize.CoordinatesToCellName(8, barisTotal)
	cellTotal, _ := excelize.CoordinatesToCellName(9, barisTotal)
	f.SetCellValue(sheet, cellLabel, "TOTAL")
	f.SetCellValue(sheet, cellTotal, totalSemua)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat laporan"})
	}

	filename := fmt.Sprintf("Rekapitulasi_Honor_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}
