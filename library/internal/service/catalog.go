package service

import (
	"context"

	"github.com/libkeeper/library-service/library/internal/model"
	"github.com/libkeeper/library-service/library/internal/repository"
	"go.uber.org/zap"
)

type Catalog struct {
	log  *zap.Logger
	repo repository.CatalogRepository
}

func NewCatalog(repo repository.CatalogRepository, log *zap.Logger) *Catalog {
	return &Catalog{
		log:  log.Named("catalog"),
		repo: repo,
	}
}

func (s *Catalog) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Catalog) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Catalog) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Catalog) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Catalog) DeleteBook(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Catalog) SearchBooks(ctx context.Context, filter model.SearchFilter) ([]model.Book, error) {
	return s.repo.SearchBooks(ctx, filter)
}

func (s *Catalog) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
