package service

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusHadir = "hadir"
	StatusIzin  = "izin"
	StatusAlpha = "alpha"

	JenisUtama     = "utama"
	JenisPengganti = "pengganti"
)

var (
	ErrMissingProof    = errors.New("bukti wajib dilampirkan")
	ErrProofNotAllowed = errors.New("lampiran tidak sesuai dengan status")
	ErrInvalidFileType = errors.New("file harus berupa gambar")
	ErrFileTooLarge    = errors.New("ukuran file melebihi batas")
	ErrInvalidStatus   = errors.New("status presensi tidak valid")
)

// FileInfo adalah metadata file yang dicek sebelum upload; isi filenya
// sendiri tidak dibaca di sini.
type FileInfo struct {
	Filename    string
	ContentType string
	Size        int64
}

type SubmissionInput struct {
	Status         string
	BuktiKehadiran *FileInfo
	BuktiIzin      *FileInfo
	IsiMateri      string
}

// ValidateFile memeriksa tipe MIME dan ukuran sebelum file menyentuh
// storage. maxBytes beda untuk bukti presensi dan foto profil.
func ValidateFile(f FileInfo, maxBytes int64) error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return fmt.Errorf("%w, bukan %s", ErrInvalidFileType, f.ContentType)
	}
	if f.Size > maxBytes {
		return fmt.Errorf("%w (%d byte, maksimal %d)", ErrFileTooLarge, f.Size, maxBytes)
	}
	return nil
}

// ValidateSubmission memvalidasi input presensi sebelum upload dan POST ke
// database. Murni: dipanggil berulang dengan input sama hasilnya sama.
//
// Aturan per status:
//   - hadir: bukti kehadiran wajib, bukti izin harus kosong. Isi materi
//     diharapkan terisi tapi tidak diwajibkan.
//   - izin:  bukti izin wajib, bukti kehadiran dan isi materi harus kosong.
//   - alpha: semua lampiran harus kosong.
func ValidateSubmission(in SubmissionInput, maxBuktiBytes int64) error {
	switch in.Status {
	case StatusHadir:
		if in.BuktiIzin != nil {
			return fmt.Errorf("%w: bukti izin harus kosong jika status hadir", ErrProofNotAllowed)
		}
		if in.BuktiKehadiran == nil {
			return fmt.Errorf("%w: bukti kehadiran", ErrMissingProof)
		}
		return ValidateFile(*in.BuktiKehadiran, maxBuktiBytes)

	case StatusIzin:
		if in.BuktiKehadiran != nil || in.IsiMateri != "" {
			return fmt.Errorf("%w: bukti kehadiran dan isi materi harus kosong jika izin", ErrProofNotAllowed)
		}
		if in.BuktiIzin == nil {
			return fmt.Errorf("%w: bukti izin", ErrMissingProof)
		}
		return ValidateFile(*in.BuktiIzin, maxBuktiBytes)

	case StatusAlpha:
		if in.BuktiKehadiran != nil || in.BuktiIzin != nil || in.IsiMateri != "" {
			return fmt.Errorf("%w: semua lampiran harus kosong jika alpha", ErrProofNotAllowed)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}
}
