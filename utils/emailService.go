package utils

import (
	"ecolearner/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(cfg *config.Config, to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := cfg.EmailSender
	password := cfg.Password

	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Eco Learner <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendEnrollmentEmail confirms a paid enrollment. Called best-effort
// after the payment transaction commits; failures are logged only.
func SendEnrollmentEmail(cfg *config.Config, email, className string, price float64) {
	subject := "You're enrolled! — Eco Learner"
	body := getEmailTemplate("Enrollment Confirmed", fmt.Sprintf(`
		<p>Your payment was received and your seat is reserved.</p>
		<table style="width:100%%; margin-top: 16px;">
			<tr><td style="color:#888;">Class</td><td style="text-align:right;">%s</td></tr>
			<tr><td style="color:#888;">Amount</td><td style="text-align:right;">$%.2f</td></tr>
		</table>
		<p style="margin-top: 24px;">See you in class!</p>
	`, className, price))

	if err := SendEmail(cfg, []string{email}, subject, body); err != nil {
		log.Printf("Error sending enrollment email to %s: %v", email, err)
	}
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; color: #999999; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Eco Learner &middot; This is an automated message.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
