package infra

import (
	"fmt"
	"net/smtp"

	"ventadiaria/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending emails with PDF attachments.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
	negocio  string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		negocio:  cfg.NombreNegocio,
	}
}

// SendReporte mails the day's PDF report. fecha is ISO (YYYY-MM-DD).
func (m *Mailer) SendReporte(to, fecha, pdfPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = fmt.Sprintf("%s: Reporte de ventas %s", m.negocio, formatearFecha(fecha))
	e.Text = []byte(fmt.Sprintf("Adjunto el reporte de ventas del día %s.", formatearFecha(fecha)))

	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: attach PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
