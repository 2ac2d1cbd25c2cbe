package memory

import (
	"context"
	"fmt"
	"sort"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/repository"
)

type subscriberRepo struct{ s *Store }

func (r subscriberRepo) Get(ctx context.Context, id int64) (*entity.Subscriber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sub, ok := r.s.subscribers[id]
	if !ok {
		return nil, fmt.Errorf("Get: subscriber %d: %w", id, entity.ErrNotFound)
	}
	c := *sub
	return &c, nil
}

func (r subscriberRepo) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if sub := r.byEmail(entity.NormalizeEmail(email)); sub != nil {
		c := *sub
		return &c, nil
	}
	return nil, fmt.Errorf("GetByEmail: %w", entity.ErrNotFound)
}

func (r subscriberRepo) byEmail(email string) *entity.Subscriber {
	for _, sub := range r.s.subscribers {
		if sub.Email == email {
			return sub
		}
	}
	return nil
}

func (r subscriberRepo) List(ctx context.Context, page repository.Page) ([]*entity.Subscriber, error) {
	page = page.Normalize(repository.DefaultListLimit)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Subscriber, 0, len(r.s.subscribers))
	for _, sub := range r.s.subscribers {
		c := *sub
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubscribedAt.Equal(out[j].SubscribedAt) {
			return out[i].SubscribedAt.After(out[j].SubscribedAt)
		}
		return out[i].ID > out[j].ID
	})
	start, end := window(len(out), page)
	return out[start:end], nil
}

func (r subscriberRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.subscribers)), nil
}

func (r subscriberRepo) Create(ctx context.Context, email string) (*entity.Subscriber, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing := r.byEmail(email); existing != nil {
		c := *existing
		return &c, nil
	}
	sub := &entity.Subscriber{ID: r.s.nextSubscriberID, Email: email, SubscribedAt: r.s.now()}
	r.s.nextSubscriberID++
	r.s.subscribers[sub.ID] = sub
	c := *sub
	return &c, nil
}
