package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/shared/constant"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. Delivery is best effort: callers log and
// swallow errors, a failed mail never fails the operation that triggered it.
type Mailer interface {
	SendReservationConfirmed(to, userName, roomName string, start, end time.Time) error
}

type mailerImpl struct {
	config *config.Config
	dialer *gomail.Dialer
}

func New(cfg *config.Config) Mailer {
	dialer := gomail.NewDialer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
	)

	log.Info().Str("host", cfg.SMTP.Host).Int("port", cfg.SMTP.Port).Msg("Mailer initialized")

	return &mailerImpl{
		config: cfg,
		dialer: dialer,
	}
}

func (m *mailerImpl) SendReservationConfirmed(to, userName, roomName string, start, end time.Time) error {
	subject := fmt.Sprintf("Booking Confirmed: %s", roomName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour reservation for room %q\nfrom %s to %s is confirmed.\n\nThanks!",
		userName,
		roomName,
		start.Format(constant.MailTimeFormat),
		end.Format(constant.MailTimeFormat),
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.SMTP.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send reservation confirmation mail.")

		return fmt.Errorf("failed to send reservation confirmation mail: %w", err)
	}

	log.Info().Str("to", to).Str("room", roomName).Msg("Reservation confirmation mail sent.")

	return nil
}
