package service

import (
	"sort"
	"strconv"

	"forum-asisten-backend/internal/model"
)

// TipeHonorUnset menandai asisten yang belum ditetapkan tipe honornya.
// Ditampilkan berbeda dari tipe A-E, tarifnya selalu 0.
const TipeHonorUnset = "unset"

const (
	GroupByAsisten    = "asisten"
	GroupByMataKuliah = "mata_kuliah"
	GroupByTipeHonor  = "tipe_honor"
)

// HonorAssignment adalah penetapan tarif satu asisten, hasil join dari
// tabel rekapitulasi.
type HonorAssignment struct {
	AsistenID      uint
	TipeHonor      string
	HonorPertemuan int
}

type GroupSummary struct {
	Key             string `json:"key"`
	TipeHonor       string `json:"tipe_honor,omitempty"`
	JumlahHadir     int    `json:"jumlah_hadir"`
	JumlahIzin      int    `json:"jumlah_izin"`
	JumlahAlpha     int    `json:"jumlah_alpha"`
	JumlahPengganti int    `json:"jumlah_pengganti"`
	JumlahAnggota   int    `json:"jumlah_anggota"`
	TotalHonor      int    `json:"total_honor"`
}

type akumulator struct {
	asistenID      uint
	mataKuliahID   uint
	hadir          int
	izin           int
	alpha          int
	pengganti      int
	tipeHonor      string
	honorPertemuan int
	totalHonor     int
}

// Aggregate menghitung rekapitulasi honor dari snapshot presensi + penetapan
// honor. Tiga tahap: akumulasi per (asisten, mata kuliah), join tarif per
// asisten, lalu re-bucket sesuai groupBy. Re-bucket hanya menjumlahkan,
// tidak pernah mengubah hasil hitungan per pasangan.
//
// Aturan hitung: jenis utama menaikkan counter sesuai status; jenis
// pengganti hanya dihitung kalau statusnya hadir. Total honor =
// honor_pertemuan x (hadir + pengganti); izin dan alpha tidak dibayar.
func Aggregate(records []model.Presensi, honors []HonorAssignment, groupBy string) []GroupSummary {
	type pasangan struct {
		asisten    uint
		mataKuliah uint
	}

	acc := make(map[pasangan]*akumulator)
	for _, r := range records {
		k := pasangan{r.AsistenID, r.Jadwal.MataKuliahID}
		a := acc[k]
		if a == nil {
			a = &akumulator{asistenID: r.AsistenID, mataKuliahID: r.Jadwal.MataKuliahID}
			acc[k] = a
		}
		switch {
		case r.Jenis == JenisUtama && r.Status == StatusHadir:
			a.hadir++
		case r.Jenis == JenisUtama && r.Status == StatusIzin:
			a.izin++
		case r.Jenis == JenisUtama && r.Status == StatusAlpha:
			a.alpha++
		case r.Jenis == JenisPengganti && r.Status == StatusHadir:
			a.pengganti++
			// pengganti yang izin/alpha tidak dihitung sama sekali
		}
	}

	tarif := make(map[uint]HonorAssignment, len(honors))
	for _, h := range honors {
		tarif[h.AsistenID] = h
	}
	for _, a := range acc {
		if h, ok := tarif[a.asistenID]; ok {
			a.tipeHonor = h.TipeHonor
			a.honorPertemuan = h.HonorPertemuan
		} else {
			a.tipeHonor = TipeHonorUnset
		}
		a.totalHonor = a.honorPertemuan * (a.hadir + a.pengganti)
	}

	groups := make(map[string]*GroupSummary)
	anggota := make(map[string]map[uint]bool)
	for _, a := range acc {
		var key string
		switch groupBy {
		case GroupByMataKuliah:
			key = strconv.FormatUint(uint64(a.mataKuliahID), 10)
		case GroupByTipeHonor:
			key = a.tipeHonor
		default:
			key = strconv.FormatUint(uint64(a.asistenID), 10)
		}

		g := groups[key]
		if g == nil {
			g = &GroupSummary{Key: key}
			if groupBy == GroupByTipeHonor || groupBy == "" || groupBy == GroupByAsisten {
				g.TipeHonor = a.tipeHonor
			}
			groups[key] = g
			anggota[key] = make(map[uint]bool)
		}
		g.JumlahHadir += a.hadir
		g.JumlahIzin += a.izin
		g.JumlahAlpha += a.alpha
		g.JumlahPengganti += a.pengganti
		g.TotalHonor += a.totalHonor
		anggota[key][a.asistenID] = true
	}

	out := make([]GroupSummary, 0, len(groups))
	for key, g := range groups {
		g.JumlahAnggota = len(anggota[key])
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
