package email

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/gomail.v2"

	"vbuddy/internal/domain/ticket"
	apperrors "vbuddy/internal/shared/errors"
	"vbuddy/internal/shared/logger"
)

const defaultSendTimeout = 15 * time.Second

type SMTPConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	FromAddress    string
	FromName       string
	SupportAddress string
	LogoPath       string
	SendTimeout    time.Duration
}

// SMTPDispatcher sends notifications through a single SMTP account using
// gomail. Each send is bounded by the configured timeout; a timeout counts
// as a delivery failure.
type SMTPDispatcher struct {
	config SMTPConfig
	dialer *gomail.Dialer
	log    logger.Interface
}

var _ Dispatcher = (*SMTPDispatcher)(nil)

func NewSMTPDispatcher(config SMTPConfig, log logger.Interface) *SMTPDispatcher {
	if config.SendTimeout <= 0 {
		config.SendTimeout = defaultSendTimeout
	}
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPDispatcher{
		config: config,
		dialer: dialer,
		log:    log.Named("email"),
	}
}

// NotifySupportTeam alerts the operations mailbox about a new ticket.
func (s *SMTPDispatcher) NotifySupportTeam(ctx context.Context, t ticket.Ticket) error {
	subject := fmt.Sprintf("New Support Request - Ticket ID: %s", t.ID)
	htmlBody := fmt.Sprintf(`
		<p>A new support request has been raised via the VBuddy chatbot with the following details:</p>
		<ul>
			<li><strong>Ticket ID:</strong> %s</li>
			<li><strong>Name:</strong> %s</li>
			<li><strong>Mobile:</strong> %s</li>
			<li><strong>Email:</strong> %s</li>
			<li><strong>Reason:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please contact the user as soon as possible.</p>
		<p>Thank you,<br/>VBuddy Chatbot</p>
	`, t.ID, t.Name, t.Mobile, t.Email, t.DisplayReason(), t.Timestamp)

	plainBody := fmt.Sprintf(`A new support request has been raised via the VBuddy chatbot.

Ticket ID: %s
Name: %s
Mobile: %s
Email: %s
Reason: %s
Time: %s

Please contact the user as soon as possible.
`, t.ID, t.Name, t.Mobile, t.Email, t.DisplayReason(), t.Timestamp)

	m := s.newMessage(s.config.SupportAddress, subject, htmlBody, plainBody)
	return s.send(ctx, m, "support_team", t.ID)
}

// NotifyRequester sends the branded confirmation to the submitting user,
// with the logo embedded inline. A missing logo asset fails only this call.
func (s *SMTPDispatcher) NotifyRequester(ctx context.Context, t ticket.Ticket) error {
	if _, err := os.Stat(s.config.LogoPath); err != nil {
		return apperrors.NewDeliveryFailedError("logo asset unavailable", err.Error())
	}
	logoCID := filepath.Base(s.config.LogoPath)

	subject := fmt.Sprintf("Your Support Request - Ticket ID: %s", t.ID)
	htmlBody := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px;">
			<img src="cid:%s" alt="VBuddy" style="max-height: 48px;"/>
			<h2>We received your support request</h2>
			<p>Hi %s,</p>
			<p>Your request has been recorded with ticket ID <strong>%s</strong>.
			Our support team will contact you shortly on %s.</p>
			<ul>
				<li><strong>Reason:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>
			</ul>
			<p>Please quote your ticket ID in any follow-up.</p>
			<p>Thank you,<br/>VBuddy Support</p>
		</div>
	`, logoCID, t.Name, t.ID, t.Mobile, t.DisplayReason(), t.Timestamp)

	plainBody := fmt.Sprintf(`Hi %s,

Your support request has been recorded with ticket ID %s.
Our support team will contact you shortly on %s.

Reason: %s
Time: %s

Please quote your ticket ID in any follow-up.

Thank you,
VBuddy Support
`, t.Name, t.ID, t.Mobile, t.DisplayReason(), t.Timestamp)

	m := s.newMessage(t.Email, subject, htmlBody, plainBody)
	m.Embed(s.config.LogoPath)
	return s.send(ctx, m, "requester", t.ID)
}

func (s *SMTPDispatcher) newMessage(to, subject, htmlBody, plainBody string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

// send performs one delivery attempt bounded by the configured timeout.
// gomail has no context support, so the dial-and-send runs in its own
// goroutine and the slow path is abandoned to finish in the background.
func (s *SMTPDispatcher) send(ctx context.Context, m *gomail.Message, recipient, ticketID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.SendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.log.Warnw("email send failed", "recipient", recipient, "ticket_id", ticketID, "error", err)
			return apperrors.NewDeliveryFailedError("email send failed", err.Error())
		}
		s.log.Infow("email sent", "recipient", recipient, "ticket_id", ticketID)
		return nil
	case <-ctx.Done():
		s.log.Warnw("email send timed out", "recipient", recipient, "ticket_id", ticketID)
		return apperrors.NewDeliveryFailedError("email send timed out", ctx.Err().Error())
	}
}
