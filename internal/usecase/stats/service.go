// Package stats gathers the dashboard counters shown in the admin panel.
package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"cahaya-digital/internal/observability/tracing"
	"cahaya-digital/internal/repository"
)

// PopularWindow is how many popular articles contribute to PopularViews.
const PopularWindow = 5

// Dashboard is a point-in-time summary of the portal.
type Dashboard struct {
	Articles     int64
	Users        int64
	Subscribers  int64
	PopularViews int64
}

type Service struct {
	Storage repository.Storage
}

func NewService(storage repository.Storage) *Service {
	return &Service{Storage: storage}
}

// Dashboard runs the counts concurrently and fails if any of them fails.
func (s *Service) Dashboard(ctx context.Context) (d Dashboard, err error) {
	ctx, span := tracing.Start(ctx, "stats.Dashboard")
	defer func() { tracing.End(span, err) }()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.Storage.Articles().Count(ctx)
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		d.Articles = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Storage.Users().Count(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		d.Users = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Storage.Subscribers().Count(ctx)
		if err != nil {
			return fmt.Errorf("count subscribers: %w", err)
		}
		d.Subscribers = n
		return nil
	})
	g.Go(func() error {
		popular, err := s.Storage.Articles().ListPopular(ctx, PopularWindow)
		if err != nil {
			return fmt.Errorf("list popular: %w", err)
		}
		for _, a := range popular {
			d.PopularViews += a.Views
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
