package services

import (
	"fmt"
	"html"
	"strings"
)

const logoURL = "https://idtisg3yhk.ufs.sh/f/EfXdVhpoNtwlAtbnqEeXiCHRSzQv8DJPLwYBfc0lb2jqhnAk"

// RenderEmailHTML wraps a plain-text body in the fixed branded document.
// The body is HTML-escaped and newlines become line breaks, so no markup
// a sender types can reach the recipient's mail client.
func RenderEmailHTML(body string) string {
	safeBody := strings.ReplaceAll(html.EscapeString(body), "\n", "<br />")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
  </head>
  <body style="margin: 0; padding: 0; font-family: 'Segoe UI', Arial, sans-serif; color: #0f172a;">
    <table role="presentation" cellpadding="0" cellspacing="0" width="100%%" style="padding: 40px 0;">
      <tr>
        <td align="center">
          <table role="presentation" cellpadding="0" cellspacing="0" width="600" style="background-color: #ffffff; border-radius: 24px; overflow: hidden; box-shadow: 0 20px 45px rgba(15, 23, 42, 0.12);">
            <tr>
              <td style="padding: 0;">
                <div style="background: linear-gradient(135deg, #020617, #0f172a); padding: 40px 32px; text-align: center;">
                  <img src="%s" alt="Incridea" height="72" style="display: inline-block; border: 0; height: 96px; width: auto;" />
                </div>
              </td>
            </tr>
            <tr>
              <td style="padding: 32px;">
                <div style="font-size: 16px; line-height: 1.6; color: #1e293b;">
                  %s
                </div>
              </td>
            </tr>
            <tr>
              <td style="background-color: #f8fafc; padding: 20px 32px; text-align: center; font-size: 12px; color: #64748b;">
                <p style="margin: 0;">Team Incridea</p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`, logoURL, safeBody)
}
