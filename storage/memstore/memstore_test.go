package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/householdhq/tasks-api/models"
)

func save(t *testing.T, s *Store, task models.Task) models.Task {
	t.Helper()
	saved, err := s.Save(context.Background(), &task)
	require.NoError(t, err)
	return *saved
}

func TestSaveAssignsSequentialIDs(t *testing.T) {
	s := New()

	first := save(t, s, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	second := save(t, s, models.Task{Title: "Utility Bill Payment", DueDate: "2025-03-20"})

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestSaveKeepsExistingID(t *testing.T) {
	s := New()
	ctx := context.Background()

	task := save(t, s, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	task.Paid = true
	updated, err := s.Save(ctx, &task)
	require.NoError(t, err)

	assert.Equal(t, task.ID, updated.ID)
	found, err := s.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, found.Paid)
}

func TestFindByIDAbsentIsNilNotError(t *testing.T) {
	s := New()

	task, err := s.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, task)
}

func TestExistsAndDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	task := save(t, s, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})

	exists, err := s.ExistsByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.DeleteByID(ctx, task.ID))

	exists, err = s.ExistsByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteAllKeepsIDSequence(t *testing.T) {
	s := New()
	ctx := context.Background()

	save(t, s, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	save(t, s, models.Task{Title: "Utility Bill Payment", DueDate: "2025-03-20"})
	require.NoError(t, s.DeleteAll(ctx))

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	next := save(t, s, models.Task{Title: "Car Insurance Payment", DueDate: "2025-03-10"})
	assert.Equal(t, int64(3), next.ID)
}

func TestFindAllOrderByDueDate(t *testing.T) {
	s := New()

	late := save(t, s, models.Task{Title: "Kids Classes Booking", DueDate: "2025-03-25"})
	early := save(t, s, models.Task{Title: "Rent Payment", DueDate: "2025-03-01"})
	// same due date as late, inserted after: tie breaks by id
	tied := save(t, s, models.Task{Title: "Utility Bill Payment", DueDate: "2025-03-25"})

	ordered, err := s.FindAllOrderByDueDate(context.Background())
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, early.ID, ordered[0].ID)
	assert.Equal(t, late.ID, ordered[1].ID)
	assert.Equal(t, tied.ID, ordered[2].ID)
}

func TestDerivedFilters(t *testing.T) {
	s := New()
	ctx := context.Background()

	rent := save(t, s, models.Task{Title: "Rent Payment", DueDate: "2025-03-01", Category: "Housing"})
	insurance := save(t, s, models.Task{Title: "Car Insurance Payment", DueDate: "2025-03-10", Category: "Insurance", Paid: true})
	utility := save(t, s, models.Task{Title: "Utility Bill Payment", DueDate: "2025-03-20", Category: "Bills"})

	unpaid, err := s.FindByPaid(ctx, false)
	require.NoError(t, err)
	assert.Len(t, unpaid, 2)

	paid, err := s.FindByPaid(ctx, true)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, insurance.ID, paid[0].ID)

	housing, err := s.FindByCategory(ctx, "Housing")
	require.NoError(t, err)
	require.Len(t, housing, 1)
	assert.Equal(t, rent.ID, housing[0].ID)

	none, err := s.FindByCategory(ctx, "Groceries")
	require.NoError(t, err)
	assert.Empty(t, none)

	// inclusive on both bounds
	between, err := s.FindByDueDateBetween(ctx, "2025-03-01", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, between, 2)

	// strictly before the date, unpaid only: the bound itself is excluded
	overdue, err := s.FindDueBeforeUnpaid(ctx, utility.DueDate)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, rent.ID, overdue[0].ID)
}
