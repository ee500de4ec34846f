package utils

import (
	"bytes"
	"fmt"

	"gopkg.in/gomail.v2"

	"travel-booking-service/config"
	"travel-booking-service/domain"
)

// Mailer sends booking confirmations. Without SMTP configuration it is
// a no-op so local setups don't need a mail server.
type Mailer struct {
	cfg config.Config
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Enabled() bool {
	return m.cfg.SMTPHost != ""
}

func (m *Mailer) SendBookingConfirmation(booking *domain.Booking) error {
	if !m.Enabled() {
		return nil
	}

	var body bytes.Buffer
	body.WriteString(fmt.Sprintf("Hi %s,\n\n", booking.Passengers[0].FirstName))
	body.WriteString(fmt.Sprintf("Your %s booking %s is confirmed.\n", booking.Type, booking.ID.Hex()))
	body.WriteString(fmt.Sprintf("Total: %.2f %s", booking.Pricing.FinalPrice, booking.Pricing.Currency))
	if booking.Pricing.Discount > 0 {
		body.WriteString(fmt.Sprintf(" (promo %s applied, -%.2f)", booking.PromoCode, booking.Pricing.Discount))
	}
	body.WriteString("\n\nThank you for booking with us.\n")

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", booking.ContactInfo.Email)
	msg.SetHeader("Subject", "Your booking confirmation")
	msg.SetBody("text/plain", body.String())

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	return dialer.DialAndSend(msg)
}
