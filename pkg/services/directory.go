package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/edgeboard/edgeboard-engine/pkg/store"
)

// UnknownUserName is the sentinel display name for foreign keys pointing at a
// missing or unknown user id.
const UnknownUserName = "Unknown"

// UserDirectory resolves user ids to display names. It fetches the user
// collection at most once, on first resolve, and is safe to share across
// composers running concurrently within one page composition. Callers that
// want the fetch shared must construct one directory and pass it to each
// composer call; a nil directory makes each composer build its own, at the
// cost of duplicate fetches.
type UserDirectory struct {
	store  store.UserStore
	logger *zap.Logger

	once  sync.Once
	names map[string]string
	err   error
}

// NewUserDirectory creates a directory over the given user store. Nothing is
// fetched until the first resolve.
func NewUserDirectory(s store.UserStore, logger *zap.Logger) *UserDirectory {
	return &UserDirectory{store: s, logger: logger.Named("user-directory")}
}

func (d *UserDirectory) load(ctx context.Context) error {
	d.once.Do(func() {
		users, err := d.store.Users(ctx)
		if err != nil {
			d.logger.Error("Failed to load user directory", zap.Error(err))
			d.err = err
			return
		}
		d.names = make(map[string]string, len(users))
		for _, u := range users {
			d.names[u.ID] = u.DisplayName()
		}
	})
	return d.err
}

// Resolve returns the display name for id, or UnknownUserName when the id is
// empty, unknown, or names a user with no name on record. A failed fetch of
// the user collection propagates as an error.
func (d *UserDirectory) Resolve(ctx context.Context, id string) (string, error) {
	name, err := d.ResolveOptional(ctx, id)
	if err != nil {
		return "", err
	}
	if name == "" {
		return UnknownUserName, nil
	}
	return name, nil
}

// ResolveOptional is Resolve without the sentinel: unknown or empty ids yield
// the empty string. Used where downstream policy distinguishes "no owner"
// from a named one (edge completion).
func (d *UserDirectory) ResolveOptional(ctx context.Context, id string) (string, error) {
	if err := d.load(ctx); err != nil {
		return "", err
	}
	if id == "" {
		return "", nil
	}
	return d.names[id], nil
}
