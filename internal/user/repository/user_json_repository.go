package repository

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"fishparque/internal/domain"
	"fishparque/internal/errors"
)

// JSONUserRepository persists the credential store as a single JSON document
// mapping email to user record. Every mutation rewrites the whole file; a
// mutex serializes access so concurrent registrations cannot lose updates.
//
// A missing or unparseable document reads as an empty store. That mirrors the
// on-disk format this service inherits: the file is created lazily on first
// registration.
type JSONUserRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONUserRepository(path string) *JSONUserRepository {
	return &JSONUserRepository{path: path}
}

func (r *JSONUserRepository) Lookup(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.readAll()
	user, ok := users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// InsertIfAbsent adds the user keyed by email. Returns a ConflictError if the
// email is already registered; the check and the write happen under the same
// lock, so two concurrent registrations for one email cannot both succeed.
func (r *JSONUserRepository) InsertIfAbsent(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.readAll()
	if _, ok := users[user.Email]; ok {
		return errors.NewConflictError("Email already registered")
	}

	users[user.Email] = *user
	return r.writeAll(users)
}

// All returns every registered user in no particular order.
func (r *JSONUserRepository) All(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.readAll()
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	return out, nil
}

func (r *JSONUserRepository) readAll() map[string]domain.User {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return map[string]domain.User{}
	}

	var users map[string]domain.User
	if err := json.Unmarshal(data, &users); err != nil || users == nil {
		return map[string]domain.User{}
	}
	return users
}

func (r *JSONUserRepository) writeAll(users map[string]domain.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return errors.NewStorageError("encoding users document", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return errors.NewStorageError("writing users document", err)
	}
	return nil
}
