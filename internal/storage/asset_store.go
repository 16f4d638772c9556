package storage

import (
	"errors"
	"io"
)

// ErrUpload: penyimpanan bukti gagal. Presensi tidak boleh dibuat kalau
// error ini terjadi.
var ErrUpload = errors.New("upload bukti gagal")

// AssetStore menyimpan satu file gambar dan mengembalikan URL publiknya.
// Validasi tipe/ukuran sudah dilakukan sebelum Save dipanggil.
type AssetStore interface {
	Save(filename, contentType string, size int64, body io.Reader) (string, error)
}
