package service

import (
	"sort"
	"strings"
	"time"

	"forum-asisten-backend/internal/model"
)

// ToleransiMenit: asisten boleh presensi 30 menit sebelum jam mulai
// sampai 30 menit setelah jam selesai.
const ToleransiMenit = 30

var namaHari = map[time.Weekday]string{
	time.Sunday:    "minggu",
	time.Monday:    "senin",
	time.Tuesday:   "selasa",
	time.Wednesday: "rabu",
	time.Thursday:  "kamis",
	time.Friday:    "jumat",
	time.Saturday:  "sabtu",
}

// HariIndonesia mengembalikan nama hari dalam bahasa Indonesia, huruf kecil,
// sesuai format kolom hari di tabel jadwal.
func HariIndonesia(t time.Time) string {
	return namaHari[t.Weekday()]
}

func menitSejakTengahMalam(jam string) (int, bool) {
	t, err := time.Parse("15:04", jam)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// IsWithinWindow mengecek apakah "now" jatuh di dalam jendela presensi
// sebuah jadwal, dengan toleransi sebelum jam mulai dan sesudah jam selesai
// (dalam menit). Perbandingan hari case-insensitive.
func IsWithinWindow(jadwal model.Jadwal, now time.Time, toleransiAwal, toleransiAkhir int) bool {
	if !strings.EqualFold(jadwal.Hari, HariIndonesia(now)) {
		return false
	}

	mulai, ok := menitSejakTengahMalam(jadwal.JamMulai)
	if !ok {
		return false
	}
	selesai, ok := menitSejakTengahMalam(jadwal.JamSelesai)
	if !ok {
		return false
	}

	// Jadwal yang melewati tengah malam tidak didukung
	if selesai <= mulai {
		return false
	}

	menitNow := now.Hour()*60 + now.Minute()
	return menitNow >= mulai-toleransiAwal && menitNow <= selesai+toleransiAkhir
}

// SelectCurrentSchedule memilih maksimal satu plotingan untuk ditampilkan di
// halaman presensi. Kelas yang sedang berlangsung (jendela tanpa toleransi)
// selalu menang atas kelas yang baru akan mulai; kalau tidak ada yang sedang
// berlangsung, dipakai kandidat pertama yang masuk jendela toleransi.
// Mengembalikan nil kalau tidak ada jadwal yang cocok.
func SelectCurrentSchedule(plotingan []model.AsistenKelas, now time.Time) *model.AsistenKelas {
	hari := HariIndonesia(now)

	var hariIni []model.AsistenKelas
	for _, p := range plotingan {
		if strings.EqualFold(p.Jadwal.Hari, hari) {
			hariIni = append(hariIni, p)
		}
	}

	// Jam mulai format "HH:MM" zero-padded, jadi urutan string = urutan waktu
	sort.SliceStable(hariIni, func(i, j int) bool {
		return hariIni[i].Jadwal.JamMulai < hariIni[j].Jadwal.JamMulai
	})

	var kandidat *model.AsistenKelas
	for i := range hariIni {
		p := &hariIni[i]
		if !IsWithinWindow(p.Jadwal, now, ToleransiMenit, ToleransiMenit) {
			continue
		}
		if IsWithinWindow(p.Jadwal, now, 0, 0) {
			return p
		}
		if kandidat == nil {
			kandidat = p
		}
	}
	return kandidat
}
