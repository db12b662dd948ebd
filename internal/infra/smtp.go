package infra

import (
	"fmt"
	"net/smtp"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/config"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog/log"
)

// Mailer wraps SMTP configuration for outgoing notification emails.
// Sends go through a circuit breaker so an unreachable SMTP server fails fast.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
	breaker  *CircuitBreaker
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		breaker:  NewCircuitBreaker(DefaultCBConfig()),
	}
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool { return m.host != "" }

// Breaker exposes the circuit breaker state for the health endpoint.
func (m *Mailer) Breaker() *CircuitBreaker { return m.breaker }

// Send delivers a plain-text email. Without SMTP_HOST it only logs.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		log.Info().Str("to", to).Str("subject", subject).Msg("mailer: SMTP deshabilitado, correo omitido")
		return nil
	}

	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	return m.breaker.Execute(func() error {
		if err := e.Send(m.addr, auth); err != nil {
			return fmt.Errorf("mailer: send: %w", err)
		}
		return nil
	})
}
