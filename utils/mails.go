package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	if from == "" {
		LogInfo("SMTP non configuré, email non envoyé")
		return
	}

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message); err != nil {
		LogError(err, "Erreur lors de l'envoi de l'email")
		return
	}

	LogSuccess("Email envoyé avec succès")
}

// SendVerificationEmail envoie le code de validation d'inscription
func SendVerificationEmail(email string, code string) {
	subject := "Subject: Bienvenue sur Snapfeed \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1D9BF0; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Merci d'avoir rejoint Snapfeed</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Pour finaliser l'inscription, merci de valider votre email en saisissant le code suivant sur l'application :</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p style="font-weight: bold; color: #1D9BF0; text-align:center;">%s</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, code)

	SendMail(email, []byte(subject+mime+body))
}
