package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/models"
	"github.com/dmitrijs2005/taskboard/internal/stores"
)

// TaskService implements the per-user task contract.
type TaskService struct {
	mu          sync.Mutex
	tasks       *stores.TaskStore
	credentials *stores.CredentialStore
	opts        options
}

func NewTaskService(s kv.Storage, opts ...Option) *TaskService {
	o := buildOptions(opts)
	o.logger = o.logger.With("module", "tasks")
	return &TaskService{
		tasks:       stores.NewTaskStore(s),
		credentials: stores.NewCredentialStore(s),
		opts:        o,
	}
}

// List returns the tasks owned by userID, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	if err := sleep(ctx, s.opts.latency.Tasks); err != nil {
		return nil, err
	}

	all, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Task, 0, len(all))
	for _, t := range all {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Create stores a new task for userID. A blank status means pending.
func (s *TaskService) Create(ctx context.Context, userID string, in models.NewTask) (*models.Task, error) {
	if err := sleep(ctx, s.opts.latency.Tasks); err != nil {
		return nil, err
	}

	if in.Status == "" {
		in.Status = models.StatusPending
	}
	if err := validate(in.Title, in.Status); err != nil {
		return nil, err
	}

	ok, err := s.credentials.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownUser, userID)
	}

	now := s.opts.now().UTC()
	t := models.Task{
		ID:          s.opts.newID(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
		Revision:    1,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.tasks.Append(ctx, t); err != nil {
		return nil, err
	}
	s.opts.logger.Debug(ctx, "task created", "task_id", t.ID, "user_id", userID)
	return &t, nil
}

// Update replaces title, description and status of an existing task.
func (s *TaskService) Update(ctx context.Context, in models.TaskUpdate) (*models.Task, error) {
	return s.update(ctx, "", in)
}

// UpdateOwned is Update restricted to the tasks of userID; a task owned by
// someone else fails with common.ErrorUnauthorized.
func (s *TaskService) UpdateOwned(ctx context.Context, userID string, in models.TaskUpdate) (*models.Task, error) {
	return s.update(ctx, userID, in)
}

// update checks existence first, then ownership, revision and input.
func (s *TaskService) update(ctx context.Context, owner string, in models.TaskUpdate) (*models.Task, error) {
	if err := sleep(ctx, s.opts.latency.Tasks); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tasks.Replace(ctx, in.ID, func(cur models.Task) (models.Task, error) {
		if err := ownedBy(cur, owner); err != nil {
			return cur, err
		}
		if in.Revision != 0 && in.Revision != cur.Revision {
			return cur, fmt.Errorf("%w: task %s is at revision %d", common.ErrVersionConflict, cur.ID, cur.Revision)
		}
		if err := validate(in.Title, in.Status); err != nil {
			return cur, err
		}
		cur.Title = in.Title
		cur.Description = in.Description
		cur.Status = in.Status
		cur.Revision++
		cur.UpdatedAt = s.opts.now().UTC()
		return cur, nil
	})
}

// Delete removes the task if it exists.
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	return s.delete(ctx, "", taskID)
}

// DeleteOwned is Delete restricted to the tasks of userID. Unknown ids
// still succeed.
func (s *TaskService) DeleteOwned(ctx context.Context, userID, taskID string) error {
	return s.delete(ctx, userID, taskID)
}

func (s *TaskService) delete(ctx context.Context, owner, taskID string) error {
	if err := sleep(ctx, s.opts.latency.Tasks); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.RemoveChecked(ctx, taskID, func(t models.Task) error {
		return ownedBy(t, owner)
	})
}

func ownedBy(t models.Task, owner string) error {
	if owner != "" && t.UserID != owner {
		return fmt.Errorf("%w: task %s belongs to another user", common.ErrorUnauthorized, t.ID)
	}
	return nil
}

func validate(title string, status models.TaskStatus) error {
	if blank(title) {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrValidation, status)
	}
	return nil
}
