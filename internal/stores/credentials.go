package stores

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/models"
)

// CredentialStore holds every registered account under common.UsersKey.
type CredentialStore struct {
	kv kv.Storage
}

func NewCredentialStore(s kv.Storage) *CredentialStore {
	return &CredentialStore{kv: s}
}

func (c *CredentialStore) All(ctx context.Context) ([]models.Credential, error) {
	return load[[]models.Credential](ctx, c.kv, common.UsersKey)
}

// Add appends cred unless its username is taken, in which case it returns
// common.ErrDuplicateUsername and leaves the collection as it was.
func (c *CredentialStore) Add(ctx context.Context, cred models.Credential) error {
	return mutate(ctx, c.kv, common.UsersKey, func(all *[]models.Credential) error {
		for _, existing := range *all {
			if existing.Username == cred.Username {
				return common.ErrDuplicateUsername
			}
		}
		*all = append(*all, cred)
		return nil
	})
}

// Match returns the user whose username and password both equal the given
// ones exactly, or common.ErrInvalidCredentials.
func (c *CredentialStore) Match(ctx context.Context, username, password string) (*models.User, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, cred := range all {
		if cred.Username == username && cred.Password == password {
			u := cred.User
			return &u, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

// Exists reports whether a user with the given id is registered.
func (c *CredentialStore) Exists(ctx context.Context, userID string) (bool, error) {
	all, err := c.All(ctx)
	if err != nil {
		return false, err
	}
	for _, cred := range all {
		if cred.ID == userID {
			return true, nil
		}
	}
	return false, nil
}
