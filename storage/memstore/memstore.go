// Package memstore is an in-memory implementation of the task storage
// contract. It backs the test suites and lets the service run without a
// MongoDB instance (STORAGE=memory).
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/householdhq/tasks-api/models"
)

type Store struct {
	mu     sync.RWMutex
	tasks  map[int64]models.Task
	nextID int64
}

func New() *Store {
	return &Store{
		tasks:  make(map[int64]models.Task),
		nextID: 1,
	}
}

func (s *Store) Save(_ context.Context, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == 0 {
		task.ID = s.nextID
		s.nextID++
	}
	s.tasks[task.ID] = *task

	saved := *task
	return &saved, nil
}

func (s *Store) FindByID(_ context.Context, id int64) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (s *Store) FindAll(_ context.Context) ([]models.Task, error) {
	return s.filter(func(models.Task) bool { return true }), nil
}

// FindAllOrderByDueDate sorts ascending by due date, ties broken by
// ascending id. Ids are monotonic, so id order is insertion order.
func (s *Store) FindAllOrderByDueDate(_ context.Context) ([]models.Task, error) {
	all := s.filter(func(models.Task) bool { return true })
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].DueDate != all[j].DueDate {
			return all[i].DueDate < all[j].DueDate
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (s *Store) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tasks[id]
	return ok, nil
}

func (s *Store) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks, id)
	return nil
}

// DeleteAll wipes every record. The id sequence is not reset.
func (s *Store) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make(map[int64]models.Task)
	return nil
}

func (s *Store) FindByPaid(_ context.Context, paid bool) ([]models.Task, error) {
	return s.filter(func(t models.Task) bool { return t.Paid == paid }), nil
}

func (s *Store) FindByCategory(_ context.Context, category string) ([]models.Task, error) {
	return s.filter(func(t models.Task) bool { return t.Category == category }), nil
}

func (s *Store) FindByDueDateBetween(_ context.Context, from, to string) ([]models.Task, error) {
	return s.filter(func(t models.Task) bool {
		return t.DueDate >= from && t.DueDate <= to
	}), nil
}

func (s *Store) FindDueBeforeUnpaid(_ context.Context, date string) ([]models.Task, error) {
	return s.filter(func(t models.Task) bool {
		return t.DueDate < date && !t.Paid
	}), nil
}

func (s *Store) filter(keep func(models.Task) bool) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if keep(task) {
			out = append(out, task)
		}
	}
	// map iteration order is random; return a deterministic id order
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
