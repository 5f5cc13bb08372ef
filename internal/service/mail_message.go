package service

import (
	"fmt"
	"mime"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// mailMessage is a single outbound email with a text and an HTML body
type mailMessage struct {
	From    mail.Address
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
	ID      string
}

// newMailMessage assigns a fresh Message-ID derived from the sender domain
func newMailMessage(from mail.Address, to string) *mailMessage {
	domain := "localhost"
	if at := strings.LastIndex(from.Address, "@"); at != -1 {
		domain = from.Address[at+1:]
	}

	return &mailMessage{
		From: from,
		To:   to,
		ID:   fmt.Sprintf("<%s@%s>", uuid.NewString(), domain),
	}
}

// bytes renders the message as a multipart/alternative MIME document
func (m *mailMessage) bytes() []byte {
	boundary := strings.ReplaceAll(uuid.NewString(), "-", "")

	var b strings.Builder
	writeHeader := func(key, value string) {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	writeHeader("From", m.From.String())
	writeHeader("To", m.To)
	if m.ReplyTo != "" {
		writeHeader("Reply-To", m.ReplyTo)
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", m.Subject))
	writeHeader("Message-ID", m.ID)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
	b.WriteString("\r\n")

	writePart := func(contentType, body string) {
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString("Content-Type: " + contentType + "; charset=UTF-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(body)
		b.WriteString("\r\n")
	}

	if m.Text != "" {
		writePart("text/plain", m.Text)
	}
	if m.HTML != "" {
		writePart("text/html", m.HTML)
	}
	b.WriteString("--" + boundary + "--\r\n")

	return []byte(b.String())
}

// escapeHTML escapes the five reserved HTML characters so free-text fields
// cannot inject markup into rendered email bodies
func escapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
