package repository

import (
	"context"
	"strings"

	"github.com/libkeeper/library-service/library/internal/errs"
	"github.com/libkeeper/library-service/library/internal/model"
	"go.uber.org/zap"
)

const defaultCategory = "General"

func (s *Store) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]model.Book, 0, len(s.books))
	term := strings.ToLower(filter.Query)
	for _, b := range s.books {
		if filter.Query != "" && !matchBook(b, term) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(b.Category, filter.Category) {
			continue
		}
		if filter.Available != nil && *filter.Available != (b.AvailableCopies > 0) {
			continue
		}
		books = append(books, *b)
	}
	return books, nil
}

// matchBook implements the plain-list query: title and author match
// case-insensitively, isbn by substring of the stored value.
func matchBook(b *model.Book, term string) bool {
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Author), term) ||
		strings.Contains(b.ISBN, term)
}

func (s *Store) GetBook(ctx context.Context, id int) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findBook(id)
	if b == nil {
		return model.Book{}, errs.ErrBookNotFound
	}
	return *b, nil
}

func (s *Store) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := req.Category
	if category == "" {
		category = defaultCategory
	}
	b := &model.Book{
		ID:              s.nextBookID,
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Copies:          req.Copies,
		AvailableCopies: req.Copies,
		Category:        category,
		Description:     req.Description,
		DateAdded:       s.now().UTC(),
	}
	s.nextBookID++
	s.books = append(s.books, b)
	s.log.Debug("book created", zap.Int("id", b.ID), zap.String("title", b.Title))
	return *b, nil
}

func (s *Store) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findBook(id)
	if b == nil {
		return model.Book{}, errs.ErrBookNotFound
	}
	if req.Title != "" {
		b.Title = req.Title
	}
	if req.Author != "" {
		b.Author = req.Author
	}
	if req.ISBN != "" {
		b.ISBN = req.ISBN
	}
	if req.Copies > 0 {
		// Keep outstanding loans counted against the new total, clamped at
		// zero when the total shrinks below the borrowed count.
		borrowed := b.Copies - b.AvailableCopies
		b.Copies = req.Copies
		b.AvailableCopies = req.Copies - borrowed
		if b.AvailableCopies < 0 {
			b.AvailableCopies = 0
		}
	}
	if req.Category != "" {
		b.Category = req.Category
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	return *b, nil
}

func (s *Store) DeleteBook(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID != id {
			continue
		}
		if b.AvailableCopies < b.Copies {
			return errs.ErrCopiesOnLoan
		}
		s.books = append(s.books[:i], s.books[i+1:]...)
		s.log.Debug("book deleted", zap.Int("id", id))
		return nil
	}
	return errs.ErrBookNotFound
}

func (s *Store) SearchBooks(ctx context.Context, filter model.SearchFilter) ([]model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]model.Book, 0, len(s.books))
	term := strings.ToLower(filter.Query)
	author := strings.ToLower(filter.Author)
	for _, b := range s.books {
		if filter.Query != "" && !matchBook(b, term) &&
			!strings.Contains(strings.ToLower(b.Description), term) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(b.Category, filter.Category) {
			continue
		}
		if filter.Author != "" && !strings.Contains(strings.ToLower(b.Author), author) {
			continue
		}
		if filter.Available != nil && *filter.Available != (b.AvailableCopies > 0) {
			continue
		}
		results = append(results, *b)
	}
	return results, nil
}

// Categories returns the distinct category values in first-seen order.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.books))
	categories := make([]string, 0, len(s.books))
	for _, b := range s.books {
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		categories = append(categories, b.Category)
	}
	return categories, nil
}
