package stores

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/models"
)

// TaskStore holds the tasks of all users under common.TasksKey, in
// insertion order.
type TaskStore struct {
	kv kv.Storage
}

func NewTaskStore(s kv.Storage) *TaskStore {
	return &TaskStore{kv: s}
}

func (s *TaskStore) All(ctx context.Context) ([]models.Task, error) {
	return load[[]models.Task](ctx, s.kv, common.TasksKey)
}

func (s *TaskStore) Append(ctx context.Context, t models.Task) error {
	return mutate(ctx, s.kv, common.TasksKey, func(all *[]models.Task) error {
		*all = append(*all, t)
		return nil
	})
}

// Replace hands the task with the given id to fn and stores what fn
// returns in its place. It returns common.ErrTaskNotFound when no task
// has that id; an error from fn aborts without writing.
func (s *TaskStore) Replace(ctx context.Context, id string, fn func(models.Task) (models.Task, error)) (*models.Task, error) {
	var updated models.Task
	err := mutate(ctx, s.kv, common.TasksKey, func(all *[]models.Task) error {
		i := slices.IndexFunc(*all, func(t models.Task) bool { return t.ID == id })
		if i < 0 {
			return common.ErrTaskNotFound
		}
		next, err := fn((*all)[i])
		if err != nil {
			return err
		}
		(*all)[i] = next
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes the task with the given id; an unknown id is not an error.
func (s *TaskStore) Remove(ctx context.Context, id string) error {
	return s.RemoveChecked(ctx, id, nil)
}

// RemoveChecked is Remove that first hands the task to check, when it is
// not nil; an error from check aborts without writing.
func (s *TaskStore) RemoveChecked(ctx context.Context, id string, check func(models.Task) error) error {
	return mutate(ctx, s.kv, common.TasksKey, func(all *[]models.Task) error {
		i := slices.IndexFunc(*all, func(t models.Task) bool { return t.ID == id })
		if i < 0 {
			return errUnchanged
		}
		if check != nil {
			if err := check((*all)[i]); err != nil {
				return err
			}
		}
		*all = slices.Delete(*all, i, i+1)
		return nil
	})
}
