package email

import (
	"strconv"

	"github.com/go-mail/mail"

	"okaziyo-api-io/api/pkg/util"
)

// Service sends a single composed message over SMTP.
type Service struct {
	content Composer
}

func NewService(content Composer) Service {
	return Service{content: content}
}

func (s *Service) SendMail() error {
	m := mail.NewMessage()
	for _, content := range s.content.Header {
		m.SetHeader(content.field, content.value...)
	}

	for _, content := range s.content.AddressHeader {
		m.SetAddressHeader(content.field, content.address, content.name)
	}

	body := s.content.Body
	m.SetBody(body.contentType, body.body)

	smtpHost := util.LoadEnvFor("SMTP_HOST")
	smtpPort, err := strconv.Atoi(util.LoadEnvFor("SMTP_PORT"))
	if err != nil {
		smtpPort = 2525
	}
	smtpUsername := util.LoadEnvFor("SMTP_USERNAME")
	smtpPassword := util.LoadEnvFor("SMTP_PASSWORD")

	dialer := mail.NewDialer(smtpHost, smtpPort, smtpUsername, smtpPassword)
	if err := dialer.DialAndSend(m); err != nil {
		return err
	}

	return nil
}

// Composer is the declarative description of an outgoing message.
type Composer struct {
	Header        []SetHeader
	AddressHeader []SetAddressHeader
	Body          SetBody
}

type SetHeader struct {
	field string
	value []string
}

type SetAddressHeader struct {
	field   string
	address string
	name    string
}

type SetBody struct {
	contentType string
	body        string
}
