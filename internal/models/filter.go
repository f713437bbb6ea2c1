package models

import (
	"fmt"
	"strings"
)

type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterPending   FilterMode = "pending"
	FilterCompleted FilterMode = "completed"
)

// ParseFilterMode maps user input to a FilterMode; blank means all.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Filter returns the tasks matching mode in their original order.
// Pending selects everything that is not completed.
func Filter(tasks []Task, mode FilterMode) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		switch mode {
		case FilterPending:
			if t.Status == StatusCompleted {
				continue
			}
		case FilterCompleted:
			if t.Status != StatusCompleted {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
