package service

import (
	"context"

	"github.com/libkeeper/library-service/library/internal/model"
	"github.com/libkeeper/library-service/library/internal/repository"
	"go.uber.org/zap"
)

const defaultLoanDays = 14

type Ledger struct {
	log  *zap.Logger
	repo repository.LedgerRepository
}

func NewLedger(repo repository.LedgerRepository, log *zap.Logger) *Ledger {
	return &Ledger{
		log:  log.Named("ledger"),
		repo: repo,
	}
}

func (s *Ledger) BorrowBook(ctx context.Context, req model.BorrowRequest) (model.BorrowRecord, error) {
	days := req.DaysToReturn
	if days == 0 {
		days = defaultLoanDays
	}
	return s.repo.CreateBorrow(ctx, req.BookID, req.BorrowerID, days)
}

func (s *Ledger) ReturnBook(ctx context.Context, borrowID int) (model.BorrowRecord, error) {
	return s.repo.ReturnBorrow(ctx, borrowID)
}

func (s *Ledger) ListBorrowed(ctx context.Context) ([]model.BorrowRecord, error) {
	return s.repo.ActiveBorrows(ctx)
}

func (s *Ledger) ListOverdue(ctx context.Context) ([]model.BorrowRecord, error) {
	return s.repo.OverdueBorrows(ctx)
}
