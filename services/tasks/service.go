package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/householdhq/tasks-api/models"
)

// ErrNotFound is returned by update, toggle and delete when no task matches
// the given id. Reads never return it; an absent record is a nil task or an
// empty slice.
var ErrNotFound = errors.New("task not found")

// Storage is the persistence contract the service consumes. Absent records
// are reported as (nil, nil), not as errors.
type Storage interface {
	Save(ctx context.Context, task *models.Task) (*models.Task, error)
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindAll(ctx context.Context) ([]models.Task, error)
	FindAllOrderByDueDate(ctx context.Context) ([]models.Task, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	FindByPaid(ctx context.Context, paid bool) ([]models.Task, error)
	FindByCategory(ctx context.Context, category string) ([]models.Task, error)
	FindByDueDateBetween(ctx context.Context, from, to string) ([]models.Task, error)
	FindDueBeforeUnpaid(ctx context.Context, date string) ([]models.Task, error)
}

// Service applies existence checks and the two pieces of derived behavior
// (paid toggle, overdue filter) on top of pass-through CRUD.
type Service struct {
	storage Storage
	now     func() time.Time
}

func New(storage Storage) *Service {
	return &Service{
		storage: storage,
		now:     time.Now,
	}
}

// WithClock overrides the clock used to resolve "today" for overdue reads.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetAllTasks returns every task sorted ascending by due date.
func (s *Service) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	return s.storage.FindAllOrderByDueDate(ctx)
}

// GetTaskByID returns (nil, nil) when no task matches.
func (s *Service) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.storage.FindByID(ctx, id)
}

// CreateTask is a pass-through save; storage assigns the id when the input
// carries none.
func (s *Service) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	return s.storage.Save(ctx, task)
}

// UpdateTask overwrites every field of the stored task from newData. This is
// a full replace: a zero-valued field in newData clears the stored value.
func (s *Service) UpdateTask(ctx context.Context, id int64, newData *models.Task) (*models.Task, error) {
	task, err := s.storage.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	if task == nil {
		return nil, ErrNotFound
	}

	task.Title = newData.Title
	task.Description = newData.Description
	task.DueDate = newData.DueDate
	task.Paid = newData.Paid
	task.Recurring = newData.Recurring
	task.Category = newData.Category
	task.Amount = newData.Amount

	return s.storage.Save(ctx, task)
}

// ToggleTaskCompletion flips the paid flag and persists.
func (s *Service) ToggleTaskCompletion(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.storage.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	if task == nil {
		return nil, ErrNotFound
	}

	task.Paid = !task.Paid
	return s.storage.Save(ctx, task)
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	exists, err := s.storage.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check task %d: %w", id, err)
	}
	if !exists {
		return ErrNotFound
	}
	return s.storage.DeleteByID(ctx, id)
}

func (s *Service) GetTasksByStatus(ctx context.Context, paid bool) ([]models.Task, error) {
	return s.storage.FindByPaid(ctx, paid)
}

func (s *Service) GetTasksByCategory(ctx context.Context, category string) ([]models.Task, error) {
	return s.storage.FindByCategory(ctx, category)
}

// GetTasksDueBetween returns tasks with from <= dueDate <= to.
func (s *Service) GetTasksDueBetween(ctx context.Context, from, to string) ([]models.Task, error) {
	return s.storage.FindByDueDateBetween(ctx, from, to)
}

// GetOverdueTasks returns unpaid tasks due strictly before today. Today is
// resolved once per call from the service clock in server-local time.
func (s *Service) GetOverdueTasks(ctx context.Context) ([]models.Task, error) {
	today := s.now().Format(models.DateLayout)
	return s.storage.FindDueBeforeUnpaid(ctx, today)
}
