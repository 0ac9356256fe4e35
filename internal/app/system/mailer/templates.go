package mailer

import "fmt"

// SendRecoveryCode emails a password-recovery code to the given address.
func (m *Mailer) SendRecoveryCode(to, code string) error {
	subject := fmt.Sprintf("%s password recovery", m.fromName)
	text := fmt.Sprintf(
		"Your password recovery code is %s.\r\n\r\n"+
			"Use it once to set a new password. If you did not request this, you can ignore this email.",
		code,
	)
	html := fmt.Sprintf(
		`<p>Your password recovery code is <strong>%s</strong>.</p>`+
			`<p>Use it once to set a new password. If you did not request this, you can ignore this email.</p>`,
		code,
	)
	return m.Send(Email{To: to, Subject: subject, TextBody: text, HTMLBody: html})
}
