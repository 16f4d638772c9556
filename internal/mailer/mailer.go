package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim notifikasi email ke admin, misalnya saat asisten
// mengajukan sanggahan rekapitulasi. Kegagalan kirim tidak boleh
// menggagalkan request utamanya.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	admin  string
}

func New(host string, port int, username, password, from, admin string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		admin:  admin,
	}
}

// Enabled false kalau SMTP tidak dikonfigurasi; pemanggil tinggal skip.
func (m *Mailer) Enabled() bool {
	return m != nil && m.dialer.Host != "" && m.admin != ""
}

func (m *Mailer) KirimNotifSanggah(namaAsisten, isiSanggahan string) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.admin)
	msg.SetHeader("Subject", fmt.Sprintf("Sanggahan rekapitulasi baru dari %s", namaAsisten))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Asisten %s mengajukan sanggahan rekapitulasi:\n\n%s\n\nSilakan cek halaman rekapitulasi.",
		namaAsisten, isiSanggahan))

	return m.dialer.DialAndSend(msg)
}
