package cron

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zulhafiz/wellness-events/db"
	"github.com/zulhafiz/wellness-events/models"
	"github.com/zulhafiz/wellness-events/utils"
)

// StartCronJobs initializes and starts the cron scheduler for pending
// request reminders
func StartCronJobs() {
	c := cron.New()
	// Every morning at 09:00, nudge vendors about requests they have not
	// responded to.
	_, err := c.AddFunc("0 9 * * *", sendPendingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for pending request reminders")
}

// sendPendingReminders finds requests that have been waiting on a vendor
// for over a day and emails the vendor
func sendPendingReminders() {
	var requests []models.BookingRequest
	cutoff := time.Now().Add(-24 * time.Hour)

	err := db.DB.Preload("HR").Preload("Vendor").Preload("EventType").
		Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Find(&requests).Error
	if err != nil {
		log.Printf("Error fetching pending requests for reminders: %v", err)
		return
	}

	for _, request := range requests {
		if err := sendReminderEmail(&request); err != nil {
			log.Printf("Failed to send reminder for request %d: %v", request.ID, err)
			continue
		}
		log.Printf("Sent reminder for request %d to %s", request.ID, request.Vendor.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(request *models.BookingRequest) error {
	dates := make([]string, 0, len(request.ProposedDates))
	for _, d := range request.ProposedDates {
		dates = append(dates, d.Format("2006-01-02 15:04"))
	}

	subject := fmt.Sprintf("Reminder: Pending Wellness Event Request - %s", request.EventType.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A wellness event request is still waiting for your response.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Event Type:</strong> %s</li>
			<li><strong>Company:</strong> %s</li>
			<li><strong>Requested By:</strong> %s (%s)</li>
			<li><strong>Proposed Dates:</strong> %s</li>
			<li><strong>Location:</strong> %s, %s</li>
		</ul>
		<p>Please log in to approve one of the proposed dates or reject the request with a reason.</p>
		<p>Best regards,</p>
		<p>The Wellness Events Team</p>
	`, request.Vendor.Name, request.EventType.Name, request.HR.CompanyName,
		request.HR.Name, request.HR.Email,
		strings.Join(dates, ", "),
		request.ProposedLocation.Street, request.ProposedLocation.PostalCode)

	return utils.SendEmail(request.Vendor.Email, subject, body)
}
