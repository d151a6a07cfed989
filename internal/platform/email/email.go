package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"paystubs/internal/platform/config"
)

// Attachment is a file sent alongside the message body.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Mailer sends a plain-text message with one attachment.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string, attachment Attachment) error
}

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, from, to, subject, body string, attachment Attachment) error {
	return nil
}

type smtpMailer struct {
	cfg config.Config
}

// New builds the outbound mailer. With email disabled the mailer
// swallows sends, which keeps local runs from needing SMTP credentials.
func New(cfg config.Config) Mailer {
	if !cfg.EmailEnabled || cfg.SMTPHost == "" {
		return noopMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

func (s *smtpMailer) Send(ctx context.Context, from, to, subject, body string, attachment Attachment) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient address")
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	msg := buildMessage(from, to, subject, body, attachment)

	dialer := net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer client.Close()

	tlsConfig := &tls.Config{ServerName: s.cfg.SMTPHost}
	if err := client.StartTLS(tlsConfig); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", from, s.cfg.EmailPassword, s.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

const mimeBoundary = "paystub-mime-boundary"

func buildMessage(from, to, subject, body string, attachment Attachment) []byte {
	var buf bytes.Buffer

	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q", mimeBoundary),
		"",
		"",
	}
	buf.WriteString(strings.Join(headers, "\r\n"))

	buf.WriteString("--" + mimeBoundary + "\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	if len(attachment.Content) > 0 {
		contentType := attachment.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		buf.WriteString("--" + mimeBoundary + "\r\n")
		buf.WriteString(fmt.Sprintf("Content-Type: %s; name=%q\r\n", contentType, attachment.Filename))
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		buf.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", attachment.Filename))
		buf.WriteString(wrapBase64(attachment.Content))
		buf.WriteString("\r\n")
	}

	buf.WriteString("--" + mimeBoundary + "--\r\n")
	return buf.Bytes()
}

// wrapBase64 folds the encoding at 76 columns per RFC 2045.
func wrapBase64(content []byte) string {
	encoded := base64.StdEncoding.EncodeToString(content)
	var builder strings.Builder
	for len(encoded) > 76 {
		builder.WriteString(encoded[:76])
		builder.WriteString("\r\n")
		encoded = encoded[76:]
	}
	builder.WriteString(encoded)
	return builder.String()
}
