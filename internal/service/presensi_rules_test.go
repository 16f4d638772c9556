package service

import (
	"errors"
	"testing"
)

const maxBukti = 5 * 1024 * 1024

func gambarValid() *FileInfo {
	return &FileInfo{Filename: "bukti.jpg", ContentType: "image/jpeg", Size: 200 * 1024}
}

func TestValidateSubmissionHadir(t *testing.T) {
	cases := []struct {
		nama    string
		in      SubmissionInput
		wantErr error
	}{
		{
			"hadir tanpa bukti kehadiran",
			SubmissionInput{Status: StatusHadir},
			ErrMissingProof,
		},
		{
			"hadir dengan bukti valid",
			SubmissionInput{Status: StatusHadir, BuktiKehadiran: gambarValid(), IsiMateri: "Pointer dan array"},
			nil,
		},
		{
			// isi materi kosong saat hadir tetap lolos (belum diwajibkan)
			"hadir tanpa isi materi",
			SubmissionInput{Status: StatusHadir, BuktiKehadiran: gambarValid()},
			nil,
		},
		{
			"hadir tapi membawa bukti izin",
			SubmissionInput{Status: StatusHadir, BuktiKehadiran: gambarValid(), BuktiIzin: gambarValid()},
			ErrProofNotAllowed,
		},
	}
	for _, c := range cases {
		err := ValidateSubmission(c.in, maxBukti)
		if c.wantErr == nil && err != nil {
			t.Errorf("%s: unexpected error %v", c.nama, err)
		}
		if c.wantErr != nil && !errors.Is(err, c.wantErr) {
			t.Errorf("%s: got %v, want %v", c.nama, err, c.wantErr)
		}
	}
}

func TestValidateSubmissionIzinDanAlpha(t *testing.T) {
	cases := []struct {
		nama    string
		in      SubmissionInput
		wantErr error
	}{
		{
			"izin tanpa bukti izin",
			SubmissionInput{Status: StatusIzin},
			ErrMissingProof,
		},
		{
			"izin dengan bukti valid",
			SubmissionInput{Status: StatusIzin, BuktiIzin: gambarValid()},
			nil,
		},
		{
			"izin tapi membawa isi materi",
			SubmissionInput{Status: StatusIzin, BuktiIzin: gambarValid(), IsiMateri: "materi"},
			ErrProofNotAllowed,
		},
		{
			"izin tapi membawa bukti kehadiran",
			SubmissionInput{Status: StatusIzin, BuktiIzin: gambarValid(), BuktiKehadiran: gambarValid()},
			ErrProofNotAllowed,
		},
		{
			"alpha bersih",
			SubmissionInput{Status: StatusAlpha},
			nil,
		},
		{
			"alpha dengan lampiran",
			SubmissionInput{Status: StatusAlpha, BuktiKehadiran: gambarValid()},
			ErrProofNotAllowed,
		},
		{
			"status tidak dikenal",
			SubmissionInput{Status: "bolos"},
			ErrInvalidStatus,
		},
	}
	for _, c := range cases {
		err := ValidateSubmission(c.in, maxBukti)
		if c.wantErr == nil && err != nil {
			t.Errorf("%s: unexpected error %v", c.nama, err)
		}
		if c.wantErr != nil && !errors.Is(err, c.wantErr) {
			t.Errorf("%s: got %v, want %v", c.nama, err, c.wantErr)
		}
	}
}

func TestValidateFile(t *testing.T) {
	if err := ValidateFile(FileInfo{Filename: "a.pdf", ContentType: "application/pdf", Size: 100}, maxBukti); !errors.Is(err, ErrInvalidFileType) {
		t.Errorf("pdf harus ditolak, got %v", err)
	}
	if err := ValidateFile(FileInfo{Filename: "a.png", ContentType: "image/png", Size: maxBukti + 1}, maxBukti); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("file kebesaran harus ditolak, got %v", err)
	}
	// Tepat di batas masih boleh
	if err := ValidateFile(FileInfo{Filename: "a.png", ContentType: "image/png", Size: maxBukti}, maxBukti); err != nil {
		t.Errorf("file tepat di batas harus lolos, got %v", err)
	}
}

func TestValidateSubmissionIdempoten(t *testing.T) {
	in := SubmissionInput{Status: StatusHadir}
	err1 := ValidateSubmission(in, maxBukti)
	err2 := ValidateSubmission(in, maxBukti)
	if (err1 == nil) != (err2 == nil) || (err1 != nil && err1.Error() != err2.Error()) {
		t.Errorf("dua panggilan dengan input sama harus menghasilkan error sama: %v vs %v", err1, err2)
	}
}
