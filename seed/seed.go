// Package seed replaces all stored tasks with a fixed demo set of six
// household bills anchored to the current calendar month.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/householdhq/tasks-api/models"
	"github.com/householdhq/tasks-api/services/tasks"
)

type demoTask struct {
	title       string
	description string
	day         int
	category    string
	amount      float64
}

var demoTasks = []demoTask{
	{"Credit Card Bill Payment", "Pay monthly credit card bill", 15, "Bills", 850},
	{"Kids Classes Booking", "Book swimming and music classes for next month", 25, "Education", 300},
	{"Car Insurance Payment", "Monthly car insurance premium", 10, "Insurance", 180},
	{"Renters Insurance Payment", "Monthly renters insurance premium", 5, "Insurance", 45},
	{"Rent Payment", "Monthly rent payment", 1, "Housing", 2200},
	{"Utility Bill Payment", "Electricity, water, and gas bill", 20, "Bills", 125},
}

// Run wipes storage and inserts the demo tasks, all unpaid and recurring,
// due in the current local month.
func Run(ctx context.Context, storage tasks.Storage, l *logrus.Logger) error {
	return run(ctx, storage, l, time.Now())
}

func run(ctx context.Context, storage tasks.Storage, l *logrus.Logger, now time.Time) error {
	if err := storage.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	year, month, _ := now.Date()
	for _, d := range demoTasks {
		due := time.Date(year, month, d.day, 0, 0, 0, 0, now.Location())
		task := &models.Task{
			Title:       d.title,
			Description: d.description,
			DueDate:     due.Format(models.DateLayout),
			Paid:        false,
			Recurring:   true,
			Category:    d.category,
			Amount:      d.amount,
		}
		if _, err := storage.Save(ctx, task); err != nil {
			return fmt.Errorf("seed task %q: %w", d.title, err)
		}
	}

	l.Infof("seeded %d demo tasks for %s %d", len(demoTasks), month, year)
	return nil
}
