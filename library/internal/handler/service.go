package handler

import (
	"context"

	"github.com/libkeeper/library-service/library/internal/model"
	"github.com/libkeeper/library-service/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	SearchBooks(ctx context.Context, filter model.SearchFilter) ([]model.Book, error)
	Categories(ctx context.Context) ([]string, error)
}

type RegistryService interface {
	ListBorrowers(ctx context.Context) ([]model.Borrower, error)
	RegisterBorrower(ctx context.Context, req model.RegisterBorrowerRequest) (model.Borrower, error)
}

type LedgerService interface {
	BorrowBook(ctx context.Context, req model.BorrowRequest) (model.BorrowRecord, error)
	ReturnBook(ctx context.Context, borrowID int) (model.BorrowRecord, error)
	ListBorrowed(ctx context.Context) ([]model.BorrowRecord, error)
	ListOverdue(ctx context.Context) ([]model.BorrowRecord, error)
}

var _ CatalogService = (*service.Catalog)(nil)
var _ RegistryService = (*service.Registry)(nil)
var _ LedgerService = (*service.Ledger)(nil)
