package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/kv"
)

// load decodes the document at key into a T; an absent key yields the zero T.
func load[T any](ctx context.Context, s kv.Storage, key string) (T, error) {
	var v T
	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, fmt.Errorf("db error: %w", err)
	}
	if err := decode(key, raw, &v); err != nil {
		return v, err
	}
	return v, nil
}

func decode(key string, raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func encode(key string, v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return b, nil
}

// errUnchanged tells mutate to skip the write.
var errUnchanged = errors.New("unchanged")

// mutate decodes the document at key, applies fn and writes the result back
// through kv.Update.
func mutate[T any](ctx context.Context, s kv.Storage, key string, fn func(*T) error) error {
	err := kv.Update(ctx, s, key, func(raw []byte) ([]byte, error) {
		var v T
		if err := decode(key, raw, &v); err != nil {
			return nil, err
		}
		if err := fn(&v); err != nil {
			return nil, err
		}
		return encode(key, v)
	})
	if errors.Is(err, errUnchanged) {
		return nil
	}
	return err
}
