package main

import (
	"context"

	"github.com/umputun/moltwatch/pkg/repository"
)

// storeAdapter composes the per-area repositories into the single store
// surface the scheduler, taxonomy manager and server expect. All methods are
// plain delegation via embedding, only Ping needs the shared pool.
type storeAdapter struct {
	*repository.PostRepository
	*repository.ThemeRepository
	*repository.ChangelogRepository
	*repository.PollStateRepository

	repos *repository.Repositories
}

func newStoreAdapter(repos *repository.Repositories) *storeAdapter {
	return &storeAdapter{
		PostRepository:      repos.Post,
		ThemeRepository:     repos.Theme,
		ChangelogRepository: repos.Changelog,
		PollStateRepository: repos.PollState,
		repos:               repos,
	}
}

// Ping verifies the underlying database connection
func (s *storeAdapter) Ping(ctx context.Context) error {
	return s.repos.Ping(ctx)
}
