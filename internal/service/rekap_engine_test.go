package service

import (
	"reflect"
	"testing"

	"forum-asisten-backend/internal/model"
)

func presensi(asisten, matkul uint, jenis, status string) model.Presensi {
	return model.Presensi{
		AsistenID: asisten,
		Jenis:     jenis,
		Status:    status,
		Jadwal:    model.Jadwal{MataKuliahID: matkul},
	}
}

func TestAggregateTotalHonor(t *testing.T) {
	// 3 hadir utama + 1 pengganti hadir + 2 izin, tarif 12500:
	// total = 12500 x (3+1) = 50000, izin tidak dibayar.
	records := []model.Presensi{
		presensi(1, 10, JenisUtama, StatusHadir),
		presensi(1, 10, JenisUtama, StatusHadir),
		presensi(1, 10, JenisUtama, StatusHadir),
		presensi(1, 10, JenisPengganti, StatusHadir),
		presensi(1, 10, JenisUtama, StatusIzin),
		presensi(1, 10, JenisUtama, StatusIzin),
	}
	honors := []HonorAssignment{{AsistenID: 1, TipeHonor: "A", HonorPertemuan: 12500}}

	out := Aggregate(records, honors, GroupByAsisten)
	if len(out) != 1 {
		t.Fatalf("harus ada tepat 1 grup, got %d", len(out))
	}
	g := out[0]
	if g.JumlahHadir != 3 || g.JumlahPengganti != 1 || g.JumlahIzin != 2 || g.JumlahAlpha != 0 {
		t.Errorf("counter salah: %+v", g)
	}
	if g.TotalHonor != 50000 {
		t.Errorf("total honor harus 50000, got %d", g.TotalHonor)
	}
	if g.TipeHonor != "A" {
		t.Errorf("tipe honor harus A, got %q", g.TipeHonor)
	}
}

func TestAggregatePenggantiTidakHadirTidakDihitung(t *testing.T) {
	records := []model.Presensi{
		presensi(1, 10, JenisPengganti, StatusIzin),
		presensi(1, 10, JenisPengganti, StatusAlpha),
	}
	out := Aggregate(records, nil, GroupByAsisten)
	if len(out) != 1 {
		t.Fatalf("got %d grup", len(out))
	}
	g := out[0]
	if g.JumlahPengganti != 0 || g.JumlahIzin != 0 || g.JumlahAlpha != 0 {
		t.Errorf("pengganti yang tidak hadir tidak boleh dihitung: %+v", g)
	}
}

func TestAggregateTanpaTipeHonor(t *testing.T) {
	records := []model.Presensi{
		presensi(7, 10, JenisUtama, StatusHadir),
	}
	out := Aggregate(records, nil, GroupByAsisten)
	if len(out) != 1 {
		t.Fatalf("got %d grup", len(out))
	}
	g := out[0]
	if g.TipeHonor != TipeHonorUnset {
		t.Errorf("asisten tanpa penetapan honor harus bertipe %q, got %q", TipeHonorUnset, g.TipeHonor)
	}
	if g.TotalHonor != 0 {
		t.Errorf("tanpa tarif, total honor harus 0, got %d", g.TotalHonor)
	}
}

func TestAggregateIdempoten(t *testing.T) {
	records := []model.Presensi{
		presensi(1, 10, JenisUtama, StatusHadir),
		presensi(2, 11, JenisUtama, StatusAlpha),
		presensi(2, 10, JenisPengganti, StatusHadir),
	}
	honors := []HonorAssignment{
		{AsistenID: 1, TipeHonor: "B", HonorPertemuan: 14500},
		{AsistenID: 2, TipeHonor: "C", HonorPertemuan: 16500},
	}
	a := Aggregate(records, honors, GroupByMataKuliah)
	b := Aggregate(records, honors, GroupByMataKuliah)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("dua panggilan dengan input sama harus identik:\n%+v\n%+v", a, b)
	}
}

func totalSemuaGrup(out []GroupSummary) int {
	total := 0
	for _, g := range out {
		total += g.TotalHonor
	}
	return total
}

func TestAggregateInvarianTotalAntarGrouping(t *testing.T) {
	// Dataset campuran: 3 asisten, 2 mata kuliah, 2 tipe honor, satu
	// asisten belum di-set. Total honor harus sama di semua cara grouping.
	records := []model.Presensi{
		presensi(1, 10, JenisUtama, StatusHadir),
		presensi(1, 10, JenisUtama, StatusHadir),
		presensi(1, 11, JenisUtama, StatusHadir),
		presensi(1, 11, JenisPengganti, StatusHadir),
		presensi(2, 10, JenisUtama, StatusHadir),
		presensi(2, 10, JenisUtama, StatusIzin),
		presensi(3, 11, JenisUtama, StatusHadir),
		presensi(3, 11, JenisUtama, StatusAlpha),
	}
	honors := []HonorAssignment{
		{AsistenID: 1, TipeHonor: "A", HonorPertemuan: 12500},
		{AsistenID: 2, TipeHonor: "E", HonorPertemuan: 24500},
		// asisten 3 sengaja tanpa penetapan
	}

	perAsisten := Aggregate(records, honors, GroupByAsisten)
	perMatkul := Aggregate(records, honors, GroupByMataKuliah)
	perTipe := Aggregate(records, honors, GroupByTipeHonor)

	// asisten 1: 12500 x (3+1) = 50000; asisten 2: 24500 x 1; asisten 3: 0
	want := 50000 + 24500
	if got := totalSemuaGrup(perAsisten); got != want {
		t.Errorf("total per asisten = %d, want %d", got, want)
	}
	if got := totalSemuaGrup(perMatkul); got != want {
		t.Errorf("total per mata kuliah = %d, want %d", got, want)
	}
	if got := totalSemuaGrup(perTipe); got != want {
		t.Errorf("total per tipe honor = %d, want %d", got, want)
	}

	// Grup tipe "unset" harus muncul terpisah, bukan dianggap tarif nyata
	adaUnset := false
	for _, g := range perTipe {
		if g.Key == TipeHonorUnset {
			adaUnset = true
			if g.TotalHonor != 0 {
				t.Errorf("grup unset harus bertotal 0, got %d", g.TotalHonor)
			}
		}
	}
	if !adaUnset {
		t.Error("grup tipe honor unset harus ikut muncul")
	}
}

func TestAggregateJumlahAnggota(t *testing.T) {
	records := []model.Presensi{
		presensi(1, 10, JenisUtama, StatusHadir),
		presensi(2, 10, JenisUtama, StatusHadir),
		presensi(2, 11, JenisUtama, StatusHadir),
	}
	out := Aggregate(records, nil, GroupByMataKuliah)
	for _, g := range out {
		switch g.Key {
		case "10":
			if g.JumlahAnggota != 2 {
				t.Errorf("matkul 10 harus beranggota 2 asisten, got %d", g.JumlahAnggota)
			}
		case "11":
			if g.JumlahAnggota != 1 {
				t.Errorf("matkul 11 harus beranggota 1 asisten, got %d", g.JumlahAnggota)
			}
		}
	}
}
