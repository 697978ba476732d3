package models

import (
	"time"

	"galeria-backend/utils"
)

// BirthdaysOn returns the clients whose birth date falls on the same day and
// month as today. The year component is ignored; clients without a birth date
// are skipped. The birthday screen, the dashboard and the greeting scheduler
// all go through this one function so they can never disagree.
func BirthdaysOn(today time.Time, clients []Client) []Client {
	var matches []Client
	for _, client := range clients {
		if client.BirthDate == nil {
			continue
		}
		if utils.SameDayMonth(*client.BirthDate, today) {
			matches = append(matches, client)
		}
	}
	return matches
}
