package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

const resetEmailTemplate = `<!DOCTYPE html>
<html>
<head>
	<title>Password Reset Code</title>
	<style>
		body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
		.container { background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px; }
		h1 { color: #333333; }
		p { color: #666666; }
		.code { font-weight: bold; color: #007bff; }
	</style>
</head>
<body>
	<div class="container">
		<h1>Password Reset Code</h1>
		<p>Your password reset code is:</p>
		<p class="code">%s</p>
		<p>If you did not request a password reset, please ignore this email.</p>
	</div>
</body>
</html>`

// SendResetCodeEmail emails the reset code to a staff member. SMTP settings
// come from the SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASS envs.
func SendResetCodeEmail(email, code string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password Reset Code")
	m.SetBody("text/plain", "Your password reset code is: "+code)
	m.AddAlternative("text/html", fmt.Sprintf(resetEmailTemplate, code))

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
