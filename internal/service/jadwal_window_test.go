package service

import (
	"testing"
	"time"

	"forum-asisten-backend/internal/model"
)

// 31 Agustus 2026 jatuh di hari Senin.
func senin(jam, menit int) time.Time {
	return time.Date(2026, 8, 31, jam, menit, 0, 0, time.Local)
}

func jadwalSenin(mulai, selesai string) model.Jadwal {
	return model.Jadwal{Hari: "senin", JamMulai: mulai, JamSelesai: selesai}
}

func TestIsWithinWindowHariBeda(t *testing.T) {
	j := model.Jadwal{Hari: "rabu", JamMulai: "08:00", JamSelesai: "10:00"}
	// Jam berapapun, kalau harinya beda hasilnya selalu false
	for _, jam := range []int{0, 8, 9, 23} {
		if IsWithinWindow(j, senin(jam, 30), ToleransiMenit, ToleransiMenit) {
			t.Errorf("jadwal rabu tidak boleh match di hari senin (jam %02d:30)", jam)
		}
	}
}

func TestIsWithinWindowHariCaseInsensitive(t *testing.T) {
	j := model.Jadwal{Hari: "Senin", JamMulai: "08:00", JamSelesai: "10:00"}
	if !IsWithinWindow(j, senin(9, 0), 0, 0) {
		t.Error("perbandingan hari harus case-insensitive")
	}
}

func TestIsWithinWindowBatas(t *testing.T) {
	j := jadwalSenin("08:00", "10:00")
	cases := []struct {
		nama string
		now  time.Time
		awal int
		akhir int
		want bool
	}{
		{"di tengah jendela, tanpa toleransi", senin(9, 0), 0, 0, true},
		{"di tengah jendela, dengan toleransi", senin(9, 0), 30, 30, true},
		{"tepat jam mulai", senin(8, 0), 0, 0, true},
		{"tepat jam selesai", senin(10, 0), 0, 0, true},
		{"sebelum jam mulai tanpa toleransi", senin(7, 59), 0, 0, false},
		{"tepat batas toleransi awal", senin(7, 30), 30, 30, true},
		{"sebelum batas toleransi awal", senin(7, 29), 30, 30, false},
		{"tepat batas toleransi akhir", senin(10, 30), 30, 30, true},
		{"setelah batas toleransi akhir", senin(10, 31), 30, 30, false},
	}
	for _, c := range cases {
		if got := IsWithinWindow(j, c.now, c.awal, c.akhir); got != c.want {
			t.Errorf("%s: got %v, want %v", c.nama, got, c.want)
		}
	}
}

func TestIsWithinWindowLewatTengahMalam(t *testing.T) {
	// Jadwal yang jam selesainya <= jam mulai tidak didukung
	j := jadwalSenin("22:00", "01:00")
	if IsWithinWindow(j, senin(23, 0), ToleransiMenit, ToleransiMenit) {
		t.Error("jadwal lewat tengah malam harus dievaluasi false")
	}
}

func TestIsWithinWindowFormatJamRusak(t *testing.T) {
	j := jadwalSenin("8 pagi", "10:00")
	if IsWithinWindow(j, senin(9, 0), 0, 0) {
		t.Error("format jam tidak valid harus dievaluasi false")
	}
}

func TestSelectCurrentScheduleKosong(t *testing.T) {
	if got := SelectCurrentSchedule(nil, senin(9, 0)); got != nil {
		t.Errorf("tanpa plotingan harus nil, got %+v", got)
	}
}

func TestSelectCurrentScheduleHariLain(t *testing.T) {
	plotingan := []model.AsistenKelas{
		{ID: 1, Jadwal: model.Jadwal{Hari: "selasa", JamMulai: "09:00", JamSelesai: "10:00"}},
	}
	if got := SelectCurrentSchedule(plotingan, senin(9, 30)); got != nil {
		t.Errorf("jadwal selasa tidak boleh terpilih di hari senin, got %+v", got)
	}
}

func TestSelectCurrentScheduleFallbackToleransi(t *testing.T) {
	// Jam 10:20: kelas A (09:00-10:00) sudah selesai tapi masih dalam
	// toleransi 30 menit, kelas B (10:30-11:30) juga sudah masuk toleransi.
	// Tidak ada yang sedang berlangsung, jadi yang dipakai kandidat pertama
	// berdasarkan jam mulai: A.
	plotingan := []model.AsistenKelas{
		{ID: 2, Jadwal: jadwalSenin("10:30", "11:30")},
		{ID: 1, Jadwal: jadwalSenin("09:00", "10:00")},
	}
	got := SelectCurrentSchedule(plotingan, senin(10, 20))
	if got == nil || got.ID != 1 {
		t.Fatalf("harusnya kelas A (id 1) yang terpilih, got %+v", got)
	}
}

func TestSelectCurrentScheduleKelasBerlangsungMenang(t *testing.T) {
	// Kelas A sudah selesai (masih dalam toleransi), kelas B sedang
	// berlangsung. B harus menang walau A lebih dulu di urutan jam mulai.
	plotingan := []model.AsistenKelas{
		{ID: 1, Jadwal: jadwalSenin("08:00", "09:00")},
		{ID: 2, Jadwal: jadwalSenin("09:10", "10:00")},
	}
	got := SelectCurrentSchedule(plotingan, senin(9, 15))
	if got == nil || got.ID != 2 {
		t.Fatalf("kelas yang sedang berlangsung harus menang, got %+v", got)
	}
}

func TestSelectCurrentScheduleDiLuarSemuaJendela(t *testing.T) {
	plotingan := []model.AsistenKelas{
		{ID: 1, Jadwal: jadwalSenin("08:00", "09:00")},
		{ID: 2, Jadwal: jadwalSenin("13:00", "15:00")},
	}
	if got := SelectCurrentSchedule(plotingan, senin(11, 0)); got != nil {
		t.Errorf("jam 11:00 di luar semua jendela, harus nil, got %+v", got)
	}
}
