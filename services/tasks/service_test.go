package tasks_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/householdhq/tasks-api/models"
	"github.com/householdhq/tasks-api/services/tasks"
	"github.com/householdhq/tasks-api/storage/memstore"
)

func newService() (*tasks.Service, *memstore.Store) {
	store := memstore.New()
	return tasks.New(store), store
}

func create(t *testing.T, service *tasks.Service, task models.Task) models.Task {
	t.Helper()
	created, err := service.CreateTask(context.Background(), &task)
	require.NoError(t, err)
	return *created
}

func TestCreateThenGetReturnsSameFields(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created := create(t, service, models.Task{
		Title:       "Rent Payment",
		Description: "Monthly rent payment",
		DueDate:     "2025-03-01",
		Recurring:   true,
		Category:    "Housing",
		Amount:      2200,
	})
	require.NotZero(t, created.ID)

	found, err := service.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created, *found)
}

func TestGetTaskByIDAbsentIsNilNotError(t *testing.T) {
	service, _ := newService()

	found, err := service.GetTaskByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpdateTaskIsFullReplace(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created := create(t, service, models.Task{
		Title:       "Car Insurance Payment",
		Description: "Monthly car insurance premium",
		DueDate:     "2025-03-10",
		Recurring:   true,
		Category:    "Insurance",
		Amount:      180,
	})

	// replacement omits description, recurring, and amount: they get cleared
	updated, err := service.UpdateTask(ctx, created.ID, &models.Task{
		Title:   "Car Insurance Payment",
		DueDate: "2025-04-10",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2025-04-10", updated.DueDate)
	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.Category)
	assert.False(t, updated.Recurring)
	assert.Zero(t, updated.Amount)
}

func TestUpdateTaskNotFound(t *testing.T) {
	service, _ := newService()

	_, err := service.UpdateTask(context.Background(), 99, &models.Task{Title: "x", DueDate: "2025-03-01"})
	assert.ErrorIs(t, err, tasks.ErrNotFound)
}

func TestToggleTaskCompletionTwiceIsIdentity(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created := create(t, service, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	require.False(t, created.Paid)

	once, err := service.ToggleTaskCompletion(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, once.Paid)

	twice, err := service.ToggleTaskCompletion(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, twice.Paid)
}

func TestToggleTaskCompletionNotFound(t *testing.T) {
	service, _ := newService()

	_, err := service.ToggleTaskCompletion(context.Background(), 99)
	assert.ErrorIs(t, err, tasks.ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created := create(t, service, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	require.NoError(t, service.DeleteTask(ctx, created.ID))

	found, err := service.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, service.DeleteTask(ctx, created.ID), tasks.ErrNotFound)
}

func TestGetAllTasksSortedByDueDate(t *testing.T) {
	service, _ := newService()

	create(t, service, models.Task{Title: "Utility Bill Payment", DueDate: "2025-03-20"})
	create(t, service, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	create(t, service, models.Task{Title: "Credit Card Bill Payment", DueDate: "2025-03-15"})

	all, err := service.GetAllTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].DueDate, all[i].DueDate)
	}
}

func TestGetOverdueTasksUsesClock(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	pastUnpaid := create(t, service, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	pastPaid := create(t, service, models.Task{Title: "Car Insurance Payment", DueDate: "2025-03-05", Paid: true})
	dueToday := create(t, service, models.Task{Title: "Credit Card Bill Payment", DueDate: "2025-03-15"})
	future := create(t, service, models.Task{Title: "Kids Classes Booking", DueDate: "2025-03-25"})

	today := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	service.WithClock(func() time.Time { return today })

	overdue, err := service.GetOverdueTasks(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, pastUnpaid.ID, overdue[0].ID)

	for _, task := range overdue {
		assert.NotEqual(t, pastPaid.ID, task.ID)
		assert.NotEqual(t, dueToday.ID, task.ID)
		assert.NotEqual(t, future.ID, task.ID)
	}
}

func TestGetTasksByStatusAndCategory(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	create(t, service, models.Task{Title: "Rent Payment", DueDate: "2025-03-01", Category: "Housing"})
	create(t, service, models.Task{Title: "Car Insurance Payment", DueDate: "2025-03-10", Category: "Insurance", Paid: true})

	unpaid, err := service.GetTasksByStatus(ctx, false)
	require.NoError(t, err)
	assert.Len(t, unpaid, 1)

	insurance, err := service.GetTasksByCategory(ctx, "Insurance")
	require.NoError(t, err)
	assert.Len(t, insurance, 1)

	empty, err := service.GetTasksByCategory(ctx, "Groceries")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetTasksDueBetweenInclusiveBounds(t *testing.T) {
	service, _ := newService()

	create(t, service, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	create(t, service, models.Task{Title: "Credit Card Bill Payment", DueDate: "2025-03-15"})
	create(t, service, models.Task{Title: "Kids Classes Booking", DueDate: "2025-03-25"})

	between, err := service.GetTasksDueBetween(context.Background(), "2025-03-01", "2025-03-15")
	require.NoError(t, err)
	assert.Len(t, between, 2)
}
