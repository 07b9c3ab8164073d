package email

import (
	"fmt"
	"log"

	"okaziyo-api-io/api/pkg/util"
)

// Data carries everything a message template needs.
type Data struct {
	Email string
	Name  string
	Token string
	Title string
}

func sender() string {
	return util.LoadEnvFor("SMTP_SENDER")
}

func compose(to, toName, subject, htmlBody string) Composer {
	return Composer{
		Header: []SetHeader{
			{field: "Subject", value: []string{subject}},
		},
		AddressHeader: []SetAddressHeader{
			{field: "From", address: sender(), name: "Okaziyo"},
			{field: "To", address: to, name: toName},
		},
		Body: SetBody{contentType: "text/html", body: htmlBody},
	}
}

// SendSubscriberWelcomeEmail greets a new subscriber.
func SendSubscriberWelcomeEmail(data Data) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to Okaziyo! You will now receive new jobs, scholarships and classifieds in your inbox.</p>",
		data.Name,
	)

	service := NewService(compose(data.Email, data.Name, "Welcome to Okaziyo", body))
	if err := service.SendMail(); err != nil {
		log.Printf("failed to send welcome email to %s: %v", data.Email, err)
	}
}

// SendPasswordResetEmail mails the single-use reset token.
func SendPasswordResetEmail(data Data) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Use this token to reset your Okaziyo password: <b>%s</b></p><p>The token expires in one hour.</p>",
		data.Name, data.Token,
	)

	service := NewService(compose(data.Email, data.Name, "Reset your Okaziyo password", body))
	if err := service.SendMail(); err != nil {
		log.Printf("failed to send password reset email to %s: %v", data.Email, err)
	}
}

// SendPasswordResetSuccessfulEmail confirms the password change.
func SendPasswordResetSuccessfulEmail(data Data) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your Okaziyo password was changed. If this wasn't you, contact support immediately.</p>",
		data.Name,
	)

	service := NewService(compose(data.Email, data.Name, "Your Okaziyo password was changed", body))
	if err := service.SendMail(); err != nil {
		log.Printf("failed to send password reset confirmation to %s: %v", data.Email, err)
	}
}
