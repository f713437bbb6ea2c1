package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/models"
)

const suggestMarker = "?"

var errTaskRequired = fmt.Errorf("%w: task number or id is required", common.ErrValidation)

// List prints the caller's tasks, newest first, optionally filtered by
// all, pending or completed. The listing numbers can be used as task
// references in later commands.
func (a *App) List(ctx context.Context, args []string) error {
	mode, err := models.ParseFilterMode(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	u, _ := a.user()
	tasks, err := a.client.List(ctx, u.ID)
	if err != nil {
		return a.check(err)
	}
	tasks = models.Filter(tasks, mode)

	a.mu.Lock()
	a.lastList = tasks
	a.mu.Unlock()

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTATUS\tTITLE\tCREATED\tID")
	for i, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, statusMark(t.Status), t.Title,
			t.CreatedAt.Local().Format("2006-01-02 15:04"), t.ID)
	}
	return tw.Flush()
}

// Show prints every field of one task.
func (a *App) Show(ctx context.Context, args []string) error {
	t, err := a.findTask(ctx, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "ID:          %s\n", t.ID)
	fmt.Fprintf(a.out, "Title:       %s\n", t.Title)
	fmt.Fprintf(a.out, "Status:      %s\n", t.Status)
	fmt.Fprintf(a.out, "Description: %s\n", t.Description)
	fmt.Fprintf(a.out, "Created:     %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "Updated:     %s\n", t.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "Revision:    %d\n", t.Revision)
	return nil
}

// Add creates a task. The title may be given inline; the description can
// be typed or generated with "?".
func (a *App) Add(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	if title == "" {
		var err error
		if title, err = GetSimpleText(a.reader, "Enter title", a.out); err != nil {
			return err
		}
	}

	desc, err := a.askDescription(ctx, title, "")
	if err != nil {
		return err
	}

	status, err := a.askStatus(models.StatusPending)
	if err != nil {
		return err
	}

	u, _ := a.user()
	t, err := a.client.Create(ctx, u.ID, models.NewTask{Title: title, Description: desc, Status: status})
	if err != nil {
		return a.check(err)
	}

	fmt.Fprintf(a.out, "Created task %s\n", t.ID)
	return nil
}

// Edit replaces title, description and status of a task. Empty answers
// keep the current values.
func (a *App) Edit(ctx context.Context, args []string) error {
	t, err := a.findTask(ctx, args)
	if err != nil {
		return err
	}

	title, err := GetWithDefault(a.reader, "Enter title", t.Title, a.out)
	if err != nil {
		return err
	}
	desc, err := a.askDescription(ctx, title, t.Description)
	if err != nil {
		return err
	}
	status, err := a.askStatus(t.Status)
	if err != nil {
		return err
	}

	return a.update(ctx, t, title, desc, status)
}

// SetStatus changes only the status of a task: status <task> <status>.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: status <task> <pending|in_progress|completed>", common.ErrValidation)
	}
	status, err := models.ParseStatus(strings.Join(args[1:], " "))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	t, err := a.findTask(ctx, args[:1])
	if err != nil {
		return err
	}
	return a.update(ctx, t, t.Title, t.Description, status)
}

// Toggle flips a task between completed and pending.
func (a *App) Toggle(ctx context.Context, args []string) error {
	t, err := a.findTask(ctx, args)
	if err != nil {
		return err
	}

	status := models.StatusCompleted
	if t.Status == models.StatusCompleted {
		status = models.StatusPending
	}
	return a.update(ctx, t, t.Title, t.Description, status)
}

func (a *App) Delete(ctx context.Context, args []string) error {
	t, err := a.findTask(ctx, args)
	if err != nil {
		return err
	}
	if err := a.client.Delete(ctx, t.ID); err != nil {
		return a.check(err)
	}

	a.mu.Lock()
	a.lastList = nil
	a.mu.Unlock()

	fmt.Fprintf(a.out, "Deleted %q\n", t.Title)
	return nil
}

// Suggest prints a generated description for a title.
func (a *App) Suggest(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	if title == "" {
		var err error
		if title, err = GetSimpleText(a.reader, "Enter title", a.out); err != nil {
			return err
		}
	}

	desc, err := a.client.Suggest(ctx, title)
	if err != nil {
		return a.check(err)
	}
	fmt.Fprintln(a.out, desc)
	return nil
}

func (a *App) update(ctx context.Context, t *models.Task, title, desc string, status models.TaskStatus) error {
	updated, err := a.client.Update(ctx, models.TaskUpdate{
		ID:          t.ID,
		Title:       title,
		Description: desc,
		Status:      status,
		Revision:    t.Revision,
	})
	if err != nil {
		return a.check(err)
	}
	fmt.Fprintf(a.out, "Updated %q: %s\n", updated.Title, updated.Status)
	return nil
}

// askDescription reads a description. "?" asks the backend for a
// suggestion and "-" clears the current value.
func (a *App) askDescription(ctx context.Context, title, current string) (string, error) {
	for {
		desc, err := GetWithDefault(a.reader, "Enter description ('?' to generate, '-' to clear)", current, a.out)
		if err != nil {
			return "", err
		}
		switch desc {
		case "-":
			return "", nil
		case suggestMarker:
		default:
			return desc, nil
		}

		suggestion, err := a.client.Suggest(ctx, title)
		if err != nil {
			return "", a.check(err)
		}
		if suggestion == "" {
			fmt.Fprintln(a.out, "No suggestion, keeping the current description")
			return current, nil
		}
		fmt.Fprintf(a.out, "Suggested: %s\n", suggestion)

		ok, err := confirm(a.reader, "Use this description?", a.out)
		if err != nil {
			return "", err
		}
		if ok {
			return suggestion, nil
		}
	}
}

func (a *App) askStatus(current models.TaskStatus) (models.TaskStatus, error) {
	v, err := GetWithDefault(a.reader, "Enter status (pending, in_progress, completed)", string(current), a.out)
	if err != nil {
		return "", err
	}
	s, err := models.ParseStatus(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return s, nil
}

// findTask resolves a task reference: a number from the last listing
// (optionally prefixed by '#') or a task ID. It always reloads the task so
// edits start from the latest revision.
func (a *App) findTask(ctx context.Context, args []string) (*models.Task, error) {
	if len(args) == 0 {
		return nil, errTaskRequired
	}
	ref := args[0]

	id := ref
	a.mu.RLock()
	if n, err := strconv.Atoi(strings.TrimPrefix(ref, "#")); err == nil && n >= 1 && n <= len(a.lastList) {
		id = a.lastList[n-1].ID
	}
	a.mu.RUnlock()

	u, _ := a.user()
	tasks, err := a.client.List(ctx, u.ID)
	if err != nil {
		return nil, a.check(err)
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", common.ErrTaskNotFound, ref)
}

func statusMark(s models.TaskStatus) string {
	switch s {
	case models.StatusCompleted:
		return "[x] done"
	case models.StatusInProgress:
		return "[~] in progress"
	}
	return "[ ] pending"
}
