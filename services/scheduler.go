// services/scheduler.go
package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler wires the background jobs: birthday greetings every morning
// and an hourly sweep for sales left inconsistent by the legacy client.
func StartScheduler(sales *SaleService, greetings *GreetingService) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 9 * * *", greetings.SendBirthdayGreetings)

	c.AddFunc("@hourly", func() {
		repaired, err := sales.Reconcile(context.Background())
		if err != nil {
			log.Printf("Sale reconciliation failed: %v", err)
			return
		}
		if repaired > 0 {
			log.Printf("Sale reconciliation repaired %d artwork(s)", repaired)
		}
	})

	c.Start()
	log.Println("Background scheduler started")
	return c
}
