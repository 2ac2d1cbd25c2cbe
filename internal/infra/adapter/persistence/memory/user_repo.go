package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

type userRepo struct{ s *Store }

func (r userRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("Get: user %d: %w", id, entity.ErrNotFound)
	}
	return u.Clone(), nil
}

func (r userRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u := r.byUsername(strings.TrimSpace(username)); u != nil {
		return u.Clone(), nil
	}
	return nil, fmt.Errorf("GetByUsername: %q: %w", username, entity.ErrNotFound)
}

// byUsername must be called with the lock held.
func (r userRepo) byUsername(username string) *entity.User {
	for _, u := range r.s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (r userRepo) List(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	page = page.Normalize(repository.DefaultListLimit)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	start, end := window(len(out), page)
	return out[start:end], nil
}

func (r userRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

func (r userRepo) Create(ctx context.Context, in entity.UserInput) (*entity.User, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u := entity.NewUser(in, r.s.now())
	if r.byUsername(u.Username) != nil {
		return nil, fmt.Errorf("Create: username %q: %w", u.Username, entity.ErrConflict)
	}
	u.ID = r.s.nextUserID
	r.s.nextUserID++
	r.s.users[u.ID] = u
	return u.Clone(), nil
}

func (r userRepo) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("Update: user %d: %w", id, entity.ErrNotFound)
	}
	if patch.Username != nil {
		name := strings.TrimSpace(*patch.Username)
		if other := r.byUsername(name); other != nil && other.ID != id {
			return nil, fmt.Errorf("Update: username %q: %w", name, entity.ErrConflict)
		}
	}
	patch.Apply(u)
	return u.Clone(), nil
}

func (r userRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	return true, nil
}
