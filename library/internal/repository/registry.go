package repository

import (
	"context"

	"github.com/libkeeper/library-service/library/internal/errs"
	"github.com/libkeeper/library-service/library/internal/model"
	"go.uber.org/zap"
)

func (s *Store) ListBorrowers(ctx context.Context) ([]model.Borrower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	borrowers := make([]model.Borrower, 0, len(s.borrowers))
	for _, b := range s.borrowers {
		borrowers = append(borrowers, *b)
	}
	return borrowers, nil
}

func (s *Store) CreateBorrower(ctx context.Context, req model.RegisterBorrowerRequest) (model.Borrower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Exact, case-sensitive match on the stored email.
	for _, b := range s.borrowers {
		if b.Email == req.Email {
			return model.Borrower{}, errs.ErrEmailTaken
		}
	}
	b := &model.Borrower{
		ID:               s.nextBorrowerID,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		RegistrationDate: s.now().UTC(),
	}
	s.nextBorrowerID++
	s.borrowers = append(s.borrowers, b)
	s.log.Debug("borrower registered", zap.Int("id", b.ID), zap.String("email", b.Email))
	return *b, nil
}
