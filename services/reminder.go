package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"glowbook-backend/models"
	"glowbook-backend/store"
	"glowbook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ReminderService sends day-before appointment reminders over WhatsApp or
// SMS. Without Twilio credentials it only logs what it would send.
type ReminderService struct {
	store  *store.Store
	client *twilio.RestClient
	log    *logrus.Logger
}

func NewReminderService(st *store.Store, log *logrus.Logger) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		store: st,
		log:   log,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	s.log.Info("reminder scheduler started")
}

// SendDailyReminders scans every stored account for bookings happening
// tomorrow and sends each one a reminder.
func (s *ReminderService) SendDailyReminders() {
	s.log.Info("starting daily reminder processing")

	now := time.Now()
	for _, raw := range s.store.Users() {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			s.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("skipping malformed user record")
			continue
		}
		if user.Phone == "" {
			continue
		}

		for _, booking := range user.RecentBookings {
			date, err := time.Parse(time.RFC3339, booking.Date)
			if err != nil {
				continue
			}
			if utils.DaysBetween(now, date) == 1 {
				s.sendReminder(user, booking)
			}
		}
	}

	s.log.Info("daily reminder processing completed")
}

func (s *ReminderService) sendReminder(user models.User, booking models.Booking) {
	message := fmt.Sprintf("Hi %s, a reminder: your %s appointment at %s is tomorrow at %s. See you there!",
		user.Name, booking.ServiceName, booking.SalonName, booking.Time)

	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || os.Getenv("TWILIO_AUTH_TOKEN") == "" {
		s.log.WithFields(logrus.Fields{
			"to":      user.Phone,
			"booking": booking.ID,
		}).Info("twilio not configured, skipping send: " + message)
		return
	}

	// Use WhatsApp when the phone is in E.164 format, else plain SMS.
	channel := "sms"
	to := user.Phone
	if strings.HasPrefix(user.Phone, "+") {
		to = "whatsapp:" + user.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"to":    user.Phone,
			"error": err.Error(),
		}).Warn("failed to send reminder")
		return
	}
	if resp.Sid != nil {
		s.log.WithFields(logrus.Fields{"to": user.Phone, "sid": *resp.Sid}).Info("reminder sent")
	} else {
		s.log.WithFields(logrus.Fields{"to": user.Phone}).Info("reminder sent, no SID returned")
	}
}
