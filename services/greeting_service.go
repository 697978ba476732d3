// services/greeting_service.go
package services

import (
	"log"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"galeria-backend/config"
	"galeria-backend/models"
)

// GreetingService sends a courtesy message to every client whose birthday
// is today. It reuses the same birthday matching as the birthday screen.
type GreetingService struct {
	db     *gorm.DB
	cfg    config.TwilioConfig
	client *twilio.RestClient
}

func NewGreetingService(db *gorm.DB, cfg config.TwilioConfig) *GreetingService {
	return &GreetingService{
		db:  db,
		cfg: cfg,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
	}
}

func (s *GreetingService) SendBirthdayGreetings() {
	if !s.cfg.Enabled {
		return
	}

	var clients []models.Client
	if err := s.db.Find(&clients).Error; err != nil {
		log.Printf("Failed to fetch clients for birthday greetings: %v", err)
		return
	}

	celebrating := models.BirthdaysOn(time.Now(), clients)
	log.Printf("Sending birthday greetings to %d client(s)", len(celebrating))

	for _, client := range celebrating {
		if client.Phone == "" {
			continue
		}

		message := "Hi " + client.Name + ", the gallery wishes you a very happy birthday!"

		// WhatsApp for E.164 numbers, plain SMS otherwise
		to := client.Phone
		from := s.cfg.PhoneNumber
		if strings.HasPrefix(client.Phone, "+") && s.cfg.WhatsAppNumber != "" {
			to = "whatsapp:" + client.Phone
			from = "whatsapp:" + s.cfg.WhatsAppNumber
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetFrom(from)
		params.SetBody(message)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			log.Printf("Failed to send birthday greeting to %s: %v", client.Name, err)
		}
	}
}
