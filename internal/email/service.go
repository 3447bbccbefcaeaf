package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jwalitptl/bloodbank-api/internal/config"
	"github.com/jwalitptl/bloodbank-api/internal/model"
)

// Service sends operational notification mail.
type Service interface {
	// Enabled reports whether delivery is configured. Callers skip sending
	// when it returns false.
	Enabled() bool
	SendRequestNotification(request *model.EmergencyRequest) error
}

type service struct {
	cfg config.SMTPConfig
}

func NewService(cfg config.SMTPConfig) Service {
	return &service{cfg: cfg}
}

func (s *service) Enabled() bool {
	return s.cfg.Host != "" && s.cfg.NotifyTo != ""
}

// SendRequestNotification mails the configured recipient about a newly raised
// emergency request.
func (s *service) SendRequestNotification(request *model.EmergencyRequest) error {
	bloodGroup := "unspecified"
	if request.BloodGroupRequired != nil {
		bloodGroup = *request.BloodGroupRequired
	}
	quantity := 0
	if request.QuantityNeeded != nil {
		quantity = *request.QuantityNeeded
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.NotifyTo)
	m.SetHeader("Subject", fmt.Sprintf("Emergency blood request %s", request.ID))
	m.SetBody("text/plain", fmt.Sprintf(
		"A new emergency request was raised.\n\nRequest ID: %s\nBlood group: %s\nQuantity needed: %d units\n",
		request.ID, bloodGroup, quantity))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	return d.DialAndSend(m)
}
