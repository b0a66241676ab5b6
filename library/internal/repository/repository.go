package repository

import (
	"context"
	"sync"
	"time"

	"github.com/libkeeper/library-service/library/internal/model"
	"go.uber.org/zap"
)

type CatalogRepository interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	SearchBooks(ctx context.Context, filter model.SearchFilter) ([]model.Book, error)
	Categories(ctx context.Context) ([]string, error)
}

type RegistryRepository interface {
	ListBorrowers(ctx context.Context) ([]model.Borrower, error)
	CreateBorrower(ctx context.Context, req model.RegisterBorrowerRequest) (model.Borrower, error)
}

type LedgerRepository interface {
	CreateBorrow(ctx context.Context, bookID, borrowerID, daysToReturn int) (model.BorrowRecord, error)
	ReturnBorrow(ctx context.Context, borrowID int) (model.BorrowRecord, error)
	ActiveBorrows(ctx context.Context) ([]model.BorrowRecord, error)
	OverdueBorrows(ctx context.Context) ([]model.BorrowRecord, error)
}

// Store keeps all three collections in process memory behind a single mutex.
// Borrow and return touch a book, a borrower and the ledger in one critical
// section, so a partially applied mutation is never observable. State is
// volatile and resets on restart.
type Store struct {
	mu sync.Mutex

	books     []*model.Book
	borrowers []*model.Borrower
	borrows   []*model.BorrowRecord

	nextBookID     int
	nextBorrowerID int
	nextBorrowID   int

	now func() time.Time
	log *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		nextBookID:     1,
		nextBorrowerID: 1,
		nextBorrowID:   1,
		now:            time.Now,
		log:            log.Named("repo"),
	}
}

// findBook and findBorrower require s.mu to be held.
func (s *Store) findBook(id int) *model.Book {
	for _, b := range s.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *Store) findBorrower(id int) *model.Borrower {
	for _, b := range s.borrowers {
		if b.ID == id {
			return b
		}
	}
	return nil
}
