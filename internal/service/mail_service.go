package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/Sihle-Thwa/PortfolioV2/internal/api/dto/v1/contact"
	"github.com/Sihle-Thwa/PortfolioV2/internal/config"
	"github.com/Sihle-Thwa/PortfolioV2/internal/logging"
)

// DispatchResult reports the outcome of a single send attempt
type DispatchResult struct {
	MessageID string `json:"messageId"`
}

// MailService builds and sends contact notifications and auto-replies
// through the configured SMTP relay.
type MailService struct {
	cfg    *config.Config
	logger *logging.Logger
}

// NewMailService creates a new mail service
func NewMailService(cfg *config.Config) *MailService {
	return &MailService{
		cfg:    cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Verify checks that the mandatory transport configuration is present.
// It must be called (directly or via a send) before any delivery attempt so
// missing credentials surface as a configuration error, not a silent no-op.
func (s *MailService) Verify() error {
	if missing := s.cfg.MissingSMTPVars(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMailNotConfigured, strings.Join(missing, ", "))
	}
	return nil
}

// SendNotification composes the owner-facing message for a submission and
// transmits it. Reply-To is set to the sender so the owner can answer from
// their mail client directly.
func (s *MailService) SendNotification(ctx context.Context, sub *contact.Submission) (*DispatchResult, error) {
	if err := s.Verify(); err != nil {
		return nil, err
	}

	msg := newMailMessage(
		mail.Address{Name: sub.Name, Address: s.cfg.FromAddress()},
		s.cfg.ContactEmail,
	)
	msg.ReplyTo = sub.Email
	msg.Subject = fmt.Sprintf("Portfolio Contact: %s", sub.Name)
	msg.Text = fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", sub.Name, sub.Email, sub.Message)
	msg.HTML = notificationHTML(sub)

	if err := s.send(ctx, s.cfg.ContactEmail, msg); err != nil {
		return nil, err
	}

	s.logger.Info("Notification email sent: %s", msg.ID)
	return &DispatchResult{MessageID: msg.ID}, nil
}

// SendAutoReply composes a short acknowledgment addressed to the sender.
// The caller treats failures here as non-critical.
func (s *MailService) SendAutoReply(ctx context.Context, senderEmail, senderName string) (*DispatchResult, error) {
	if err := s.Verify(); err != nil {
		return nil, err
	}

	msg := newMailMessage(
		mail.Address{Name: s.cfg.SiteName, Address: s.cfg.FromAddress()},
		senderEmail,
	)
	msg.Subject = "Thank you for contacting me!"
	msg.Text = fmt.Sprintf(
		"Hi %s,\n\nThank you for reaching out! I've received your message and will get back to you as soon as possible.\n\nThis is an automated response. Please do not reply to this email.\n",
		senderName,
	)
	msg.HTML = autoReplyHTML(senderName, s.cfg.SiteName, s.cfg.SiteURL)

	if err := s.send(ctx, senderEmail, msg); err != nil {
		return nil, err
	}

	s.logger.Info("Auto-reply sent: %s", msg.ID)
	return &DispatchResult{MessageID: msg.ID}, nil
}

// send delivers one message over SMTP. Connection and I/O are bounded by the
// context deadline; failures are wrapped with the sentinel matching their
// class so the handler can map them to a response code.
func (s *MailService) send(ctx context.Context, rcpt string, msg *mailMessage) error {
	addr := net.JoinHostPort(s.cfg.SMTPHost, strconv.Itoa(s.cfg.SMTPPort))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrMailUnavailable, addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	if s.cfg.SMTPSecure {
		conn = tls.Client(conn, &tls.Config{ServerName: s.cfg.SMTPHost})
	}

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: handshake: %v", ErrMailUnavailable, err)
	}
	defer client.Close()

	if !s.cfg.SMTPSecure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.cfg.SMTPHost}); err != nil {
				return fmt.Errorf("%w: starttls: %v", ErrMailUnavailable, err)
			}
		}
	}

	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("%w: %v", ErrMailAuth, err)
	}

	if err := client.Mail(s.cfg.FromAddress()); err != nil {
		return fmt.Errorf("%w: mail from: %v", ErrMailUnavailable, err)
	}
	if err := client.Rcpt(rcpt); err != nil {
		return fmt.Errorf("%w: rcpt to: %v", ErrMailUnavailable, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: data: %v", ErrMailUnavailable, err)
	}
	if _, err := w.Write(msg.bytes()); err != nil {
		return fmt.Errorf("%w: write: %v", ErrMailUnavailable, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrMailUnavailable, err)
	}

	return client.Quit()
}

func notificationHTML(sub *contact.Submission) string {
	name := escapeHTML(sub.Name)
	email := escapeHTML(sub.Email)
	message := escapeHTML(sub.Message)

	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
<p><strong>Message:</strong></p>
<p style="white-space: pre-wrap;">%s</p>
<hr>
<p>This email was sent from your portfolio contact form. Reply directly to this email to respond to %s.</p>`,
		name, email, email, message, name)
}

func autoReplyHTML(senderName, siteName, siteURL string) string {
	name := escapeHTML(senderName)

	var link string
	if siteURL != "" {
		link = fmt.Sprintf(`<p><a href="%s">%s</a></p>`, siteURL, escapeHTML(siteName))
	}

	return fmt.Sprintf(`<h2>Message Received!</h2>
<p>Hi %s,</p>
<p>Thank you for reaching out! I've received your message and will get back to you as soon as possible.</p>
<p>I typically respond within 24-48 hours. If your matter is urgent, feel free to send a follow-up email.</p>
<p>Best regards,<br><strong>%s</strong></p>
%s
<hr>
<p>This is an automated response. Please do not reply to this email.</p>`,
		name, escapeHTML(siteName), link)
}
