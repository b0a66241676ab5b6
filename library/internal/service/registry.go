package service

import (
	"context"

	"github.com/libkeeper/library-service/library/internal/model"
	"github.com/libkeeper/library-service/library/internal/repository"
	"go.uber.org/zap"
)

type Registry struct {
	log  *zap.Logger
	repo repository.RegistryRepository
}

func NewRegistry(repo repository.RegistryRepository, log *zap.Logger) *Registry {
	return &Registry{
		log:  log.Named("registry"),
		repo: repo,
	}
}

func (s *Registry) ListBorrowers(ctx context.Context) ([]model.Borrower, error) {
	return s.repo.ListBorrowers(ctx)
}

func (s *Registry) RegisterBorrower(ctx context.Context, req model.RegisterBorrowerRequest) (model.Borrower, error) {
	return s.repo.CreateBorrower(ctx, req)
}
