package handler

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// formatValidationErrors menerjemahkan error validator jadi pesan yang bisa
// langsung ditampilkan ke user.
func formatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var msg string
	for i, e := range validationErrors {
		if i > 0 {
			msg += "; "
		}
		switch e.Tag() {
		case "required":
			msg += e.Field() + " wajib diisi"
		case "email":
			msg += e.Field() + " harus berupa email"
		case "oneof":
			msg += e.Field() + " harus salah satu dari: " + e.Param()
		case "min":
			msg += e.Field() + " minimal " + e.Param() + " karakter"
		case "gtfield":
			msg += e.Field() + " harus lebih besar dari " + e.Param()
		default:
			msg += e.Field() + " tidak valid"
		}
	}
	return msg
}
