// Package mongostore persists tasks in MongoDB. Integer ids are issued from
// a counters collection so the API keeps the numeric id contract.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/householdhq/tasks-api/models"
)

const counterKey = "tasks"

type Store struct {
	tasks    *mongo.Collection
	counters *mongo.Collection
}

func New(tasks, counters *mongo.Collection) *Store {
	return &Store{tasks: tasks, counters: counters}
}

// nextID atomically increments and returns the task id sequence.
func (s *Store) nextID(ctx context.Context) (int64, error) {
	filter := bson.M{"_id": counterKey}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := s.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("increment task counter: %w", err)
	}
	return counter.Seq, nil
}

func (s *Store) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == 0 {
		id, err := s.nextID(ctx)
		if err != nil {
			return nil, err
		}
		task.ID = id
	}

	filter := bson.M{"_id": task.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.tasks.ReplaceOne(ctx, filter, task, opts); err != nil {
		return nil, fmt.Errorf("save task %d: %w", task.ID, err)
	}

	saved := *task
	return &saved, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	err := s.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return &task, nil
}

func (s *Store) FindAll(ctx context.Context) ([]models.Task, error) {
	return s.find(ctx, bson.M{}, nil)
}

// FindAllOrderByDueDate sorts ascending by due date; ties break by ascending
// id, which is insertion order since ids are monotonic.
func (s *Store) FindAllOrderByDueDate(ctx context.Context) ([]models.Task, error) {
	sortOrder := bson.D{{Key: "due_date", Value: 1}, {Key: "_id", Value: 1}}
	return s.find(ctx, bson.M{}, options.Find().SetSort(sortOrder))
}

func (s *Store) ExistsByID(ctx context.Context, id int64) (bool, error) {
	count, err := s.tasks.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("count task %d: %w", id, err)
	}
	return count > 0, nil
}

func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.tasks.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// DeleteAll wipes the collection. The counter keeps counting, matching the
// identity-column behavior of a relational store.
func (s *Store) DeleteAll(ctx context.Context) error {
	if _, err := s.tasks.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete all tasks: %w", err)
	}
	return nil
}

func (s *Store) FindByPaid(ctx context.Context, paid bool) ([]models.Task, error) {
	return s.find(ctx, bson.M{"paid": paid}, nil)
}

func (s *Store) FindByCategory(ctx context.Context, category string) ([]models.Task, error) {
	return s.find(ctx, bson.M{"category": category}, nil)
}

func (s *Store) FindByDueDateBetween(ctx context.Context, from, to string) ([]models.Task, error) {
	filter := bson.M{"due_date": bson.M{"$gte": from, "$lte": to}}
	return s.find(ctx, filter, nil)
}

func (s *Store) FindDueBeforeUnpaid(ctx context.Context, date string) ([]models.Task, error) {
	filter := bson.M{"due_date": bson.M{"$lt": date}, "paid": false}
	return s.find(ctx, filter, nil)
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Task, error) {
	tasks := make([]models.Task, 0)

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.tasks.Find(ctx, filter, opts)
	} else {
		cursor, err = s.tasks.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}

	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}
