package email

import (
	"crypto/tls"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Build_NoAttachments(t *testing.T) {
	msg := Message{
		FromAddress: "mailer@example.com",
		FromName:    "Mailer",
		To:          []string{"a@example.com", "b@example.com"},
		Cc:          []string{"c@example.com"},
		Bcc:         []string{"hidden@example.com"},
		ReplyTo:     []string{"mailer@example.com", "a@example.com"},
		Subject:     "Hello",
		HTML:        "<html><body>Hi</body></html>",
	}

	data, err := msg.build()
	require.NoError(t, err)
	raw := string(data)

	assert.Contains(t, raw, "From: Mailer <mailer@example.com>\r\n")
	assert.Contains(t, raw, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, raw, "Cc: c@example.com\r\n")
	assert.Contains(t, raw, "Reply-To: mailer@example.com, a@example.com\r\n")
	assert.Contains(t, raw, "Subject: Hello\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=\"utf-8\"\r\n")
	assert.Contains(t, raw, "<html><body>Hi</body></html>")

	// Bcc recipients are in the envelope, never the headers
	assert.NotContains(t, raw, "hidden@example.com")
	assert.Contains(t, msg.recipients(), "hidden@example.com")
}

func TestMessage_Build_WithAttachments(t *testing.T) {
	msg := Message{
		FromAddress: "mailer@example.com",
		To:          []string{"a@example.com"},
		Subject:     "Report",
		HTML:        "<p>attached</p>",
		Attachments: []Attachment{
			{Filename: "report.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 fake")},
		},
	}

	data, err := msg.build()
	require.NoError(t, err)
	raw := string(data)

	assert.Contains(t, raw, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, raw, "Content-Disposition: attachment; filename=\"report.pdf\"")
	assert.Contains(t, raw, "Content-Transfer-Encoding: base64")
	assert.Contains(t, raw, "<p>attached</p>")

	// Attachment bytes must be base64, not raw
	assert.NotContains(t, raw, "%PDF-1.4 fake")
}

func TestMessage_Build_SubjectEncoding(t *testing.T) {
	msg := Message{
		FromAddress: "mailer@example.com",
		To:          []string{"a@example.com"},
		Subject:     "Приглашение",
		HTML:        "<p>hi</p>",
	}

	data, err := msg.build()
	require.NoError(t, err)

	// Non-ASCII subjects are MIME-encoded
	assert.Contains(t, string(data), "Subject: =?utf-8?q?")
}

func TestMessage_Recipients_Order(t *testing.T) {
	msg := Message{
		To:  []string{"to@example.com"},
		Cc:  []string{"cc@example.com"},
		Bcc: []string{"bcc@example.com"},
	}
	assert.Equal(t, []string{"to@example.com", "cc@example.com", "bcc@example.com"}, msg.recipients())
}

func TestNewClient(t *testing.T) {
	_, err := NewClient("", "587", "", "", false, false, 0)
	assert.Error(t, err)

	c, err := NewClient("smtp.example.com", "587", "user", "pass", false, true, 0)
	assert.NoError(t, err)
	assert.Equal(t, uint16(tls.VersionTLS12), c.tlsMinVersion)
}

func TestParseTLSVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{"", tls.VersionTLS12, false},
		{"1.0", tls.VersionTLS10, false},
		{"1.1", tls.VersionTLS11, false},
		{"1.2", tls.VersionTLS12, false},
		{"1.3", tls.VersionTLS13, false},
		{"2.0", 0, true},
	}

	for _, tt := range tests {
		t.Run("v"+strings.ReplaceAll(tt.in, ".", "_"), func(t *testing.T) {
			got, err := ParseTLSVersion(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
