// Package subscriber provides newsletter subscription use cases.
package subscriber

import (
	"context"
	"errors"
	"fmt"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/observability/metrics"
	"cahaya-digital/internal/repository"
)

type Service struct {
	Repo repository.SubscriberRepository
}

func NewService(repo repository.SubscriberRepository) *Service {
	return &Service{Repo: repo}
}

// Subscribe registers email. Subscribing an address twice returns the
// existing subscription with created set to false.
func (s *Service) Subscribe(ctx context.Context, email string) (sub *entity.Subscriber, created bool, err error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, false, err
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, entity.ErrNotFound):
		return nil, false, fmt.Errorf("lookup subscriber: %w", err)
	}

	sub, err = s.Repo.Create(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("create subscriber: %w", err)
	}
	metrics.RecordSubscription()
	return sub, true, nil
}

// List returns subscribers, newest first.
func (s *Service) List(ctx context.Context, page repository.Page) ([]*entity.Subscriber, error) {
	subs, err := s.Repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	if subs == nil {
		subs = []*entity.Subscriber{}
	}
	return subs, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}
