package repository

import (
	"context"

	"github.com/libkeeper/library-service/library/internal/errs"
	"github.com/libkeeper/library-service/library/internal/model"
	"go.uber.org/zap"
)

// CreateBorrow checks the book, the borrower and the available count before
// the first write, then applies the record append and both counter updates
// under the one lock. A failed borrow leaves no trace.
func (s *Store) CreateBorrow(ctx context.Context, bookID, borrowerID, daysToReturn int) (model.BorrowRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.findBook(bookID)
	if book == nil {
		return model.BorrowRecord{}, errs.ErrBookNotFound
	}
	borrower := s.findBorrower(borrowerID)
	if borrower == nil {
		return model.BorrowRecord{}, errs.ErrBorrowerNotFound
	}
	if book.AvailableCopies <= 0 {
		return model.BorrowRecord{}, errs.ErrNoCopies
	}

	now := s.now().UTC()
	rec := &model.BorrowRecord{
		ID:           s.nextBorrowID,
		BookID:       book.ID,
		BorrowerID:   borrower.ID,
		BookTitle:    book.Title,
		BorrowerName: borrower.Name,
		BorrowDate:   now,
		DueDate:      now.AddDate(0, 0, daysToReturn),
	}
	s.nextBorrowID++
	s.borrows = append(s.borrows, rec)
	book.AvailableCopies--
	borrower.ActiveLoans++
	s.log.Debug("book borrowed",
		zap.Int("borrowId", rec.ID),
		zap.Int("bookId", book.ID),
		zap.Int("borrowerId", borrower.ID))
	return *rec, nil
}

// ReturnBorrow resolves only active records, so returning the same id twice
// fails with errs.ErrBorrowNotFound the second time. If the referenced book
// or borrower no longer exists the record still transitions and the missing
// counter update is skipped.
func (s *Store) ReturnBorrow(ctx context.Context, borrowID int) (model.BorrowRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec *model.BorrowRecord
	for _, r := range s.borrows {
		if r.ID == borrowID && !r.Returned {
			rec = r
			break
		}
	}
	if rec == nil {
		return model.BorrowRecord{}, errs.ErrBorrowNotFound
	}

	now := s.now().UTC()
	rec.Returned = true
	rec.ReturnDate = &now
	if book := s.findBook(rec.BookID); book != nil {
		book.AvailableCopies++
	}
	if borrower := s.findBorrower(rec.BorrowerID); borrower != nil && borrower.ActiveLoans > 0 {
		borrower.ActiveLoans--
	}
	s.log.Debug("book returned", zap.Int("borrowId", rec.ID))
	return *rec, nil
}

func (s *Store) ActiveBorrows(ctx context.Context) ([]model.BorrowRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]model.BorrowRecord, 0, len(s.borrows))
	for _, r := range s.borrows {
		if !r.Returned {
			active = append(active, *r)
		}
	}
	return active, nil
}

// OverdueBorrows is computed on demand against the current time; there is no
// background sweep.
func (s *Store) OverdueBorrows(ctx context.Context) ([]model.BorrowRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	overdue := make([]model.BorrowRecord, 0, len(s.borrows))
	for _, r := range s.borrows {
		if !r.Returned && r.DueDate.Before(now) {
			overdue = append(overdue, *r)
		}
	}
	return overdue, nil
}
