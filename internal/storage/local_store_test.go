package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads")

	isi := "bukti kehadiran"
	url, err := store.Save("foto.jpg", "image/jpeg", int64(len(isi)), strings.NewReader(isi))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("url = %q, harusnya diawali /uploads/", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url = %q, ekstensi asli harusnya dipertahankan", url)
	}

	nama := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, nama))
	if err != nil {
		t.Fatalf("baca file tersimpan: %v", err)
	}
	if string(data) != isi {
		t.Errorf("isi file = %q, want %q", data, isi)
	}
}

func TestLocalStoreSaveNamaUnik(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads")

	url1, err := store.Save("sama.png", "image/png", 1, strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save pertama: %v", err)
	}
	url2, err := store.Save("sama.png", "image/png", 1, strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save kedua: %v", err)
	}
	if url1 == url2 {
		t.Errorf("dua upload dengan nama asli sama menghasilkan url identik: %q", url1)
	}
}
