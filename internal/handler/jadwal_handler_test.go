package handler

import "testing"

func TestValidasiJam(t *testing.T) {
	tests := []struct {
		nama      string
		mulai     string
		selesai   string
		adaErr    bool
	}{
		{"valid", "08:00", "10:00", false},
		{"satu menit", "08:00", "08:01", false},
		{"format mulai rusak", "8 pagi", "10:00", true},
		{"format selesai rusak", "08:00", "sepuluh", true},
		{"mulai sama dengan selesai", "08:00", "08:00", true},
		{"mulai setelah selesai", "10:00", "08:00", true},
		{"lewat tengah malam", "23:00", "01:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.nama, func(t *testing.T) {
			msg := validasiJam(tt.mulai, tt.selesai)
			if tt.adaErr && msg == "" {
				t.Errorf("validasiJam(%q, %q) = kosong, harusnya ditolak", tt.mulai, tt.selesai)
			}
			if !tt.adaErr && msg != "" {
				t.Errorf("validasiJam(%q, %q) = %q, harusnya lolos", tt.mulai, tt.selesai, msg)
			}
		})
	}
}
