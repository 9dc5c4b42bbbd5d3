package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	"github.com/sbilibin2017/gw-mailer/internal/logger"
)

// Client sends messages through a single shared SMTP account.
// When secure is set the connection uses implicit TLS; otherwise the
// client upgrades via STARTTLS, which is mandatory when requireTLS is set.
type Client struct {
	host          string
	port          string
	username      string
	password      string
	secure        bool
	requireTLS    bool
	tlsMinVersion uint16
}

// NewClient creates a new SMTP client. Host and port are required.
func NewClient(host, port, username, password string, secure, requireTLS bool, tlsMinVersion uint16) (*Client, error) {
	if host == "" || port == "" {
		return nil, fmt.Errorf("SMTP host and port are required")
	}
	if tlsMinVersion == 0 {
		tlsMinVersion = tls.VersionTLS12
	}
	return &Client{
		host:          host,
		port:          port,
		username:      username,
		password:      password,
		secure:        secure,
		requireTLS:    requireTLS,
		tlsMinVersion: tlsMinVersion,
	}, nil
}

// ParseTLSVersion maps a config string like "1.2" to a tls constant.
func ParseTLSVersion(v string) (uint16, error) {
	switch v {
	case "", "1.2":
		return tls.VersionTLS12, nil
	case "1.0":
		return tls.VersionTLS10, nil
	case "1.1":
		return tls.VersionTLS11, nil
	case "1.3":
		return tls.VersionTLS13, nil
	}
	return 0, fmt.Errorf("unsupported TLS version %q", v)
}

// Send performs one SMTP transaction for the message. There is no retry:
// any transport error is returned to the caller as-is.
func (c *Client) Send(ctx context.Context, msg Message) error {
	data, err := msg.build()
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(c.host, c.port)
	tlsConfig := &tls.Config{
		ServerName: c.host,
		MinVersion: c.tlsMinVersion,
	}

	var client *smtp.Client
	if c.secure {
		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, c.host)
		if err != nil {
			conn.Close()
			return err
		}
	} else {
		client, err = smtp.Dial(addr)
		if err != nil {
			return err
		}
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				client.Close()
				return err
			}
		} else if c.requireTLS {
			client.Close()
			return fmt.Errorf("SMTP server %s does not support STARTTLS", c.host)
		}
	}
	defer client.Quit()

	if c.username != "" {
		auth := smtp.PlainAuth("", c.username, c.password, c.host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(msg.FromAddress); err != nil {
		return err
	}
	for _, rcpt := range msg.recipients() {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	logger.Log.Infow("email dispatched",
		"to", len(msg.To),
		"cc", len(msg.Cc),
		"bcc", len(msg.Bcc),
		"attachments", len(msg.Attachments),
	)

	return nil
}
