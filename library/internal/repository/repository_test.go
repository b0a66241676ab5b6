package repository

import (
	"context"
	"testing"
	"time"

	"github.com/libkeeper/library-service/library/internal/errs"
	"github.com/libkeeper/library-service/library/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(zap.NewNop())
}

func mustCreateBook(t *testing.T, s *Store, req model.CreateBookRequest) model.Book {
	t.Helper()
	b, err := s.CreateBook(context.Background(), req)
	require.NoError(t, err)
	return b
}

func mustCreateBorrower(t *testing.T, s *Store, req model.RegisterBorrowerRequest) model.Borrower {
	t.Helper()
	b, err := s.CreateBorrower(context.Background(), req)
	require.NoError(t, err)
	return b
}

// activeLoansFor counts unreturned ledger entries against the given book.
func activeLoansFor(t *testing.T, s *Store, bookID int) int {
	t.Helper()
	records, err := s.ActiveBorrows(context.Background())
	require.NoError(t, err)
	n := 0
	for _, r := range records {
		if r.BookID == bookID {
			n++
		}
	}
	return n
}

func TestStore_BorrowLifecycle(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	book := mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 2,
	})
	require.Equal(t, 1, book.ID)
	require.Equal(t, 2, book.AvailableCopies)
	require.Equal(t, "General", book.Category)

	borrower := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{
		Name: "Alice", Email: "a@x.com",
	})
	require.Equal(t, 1, borrower.ID)
	require.Equal(t, 0, borrower.ActiveLoans)

	rec, err := s.CreateBorrow(ctx, book.ID, borrower.ID, 7)
	require.NoError(t, err)
	require.Equal(t, 1, rec.ID)
	require.Equal(t, "Dune", rec.BookTitle)
	require.Equal(t, "Alice", rec.BorrowerName)
	require.False(t, rec.Returned)
	require.Nil(t, rec.ReturnDate)
	require.Equal(t, rec.BorrowDate.AddDate(0, 0, 7), rec.DueDate)

	book, err = s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 1, book.AvailableCopies)
	require.Equal(t, book.Copies-book.AvailableCopies, activeLoansFor(t, s, book.ID))

	borrowers, err := s.ListBorrowers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, borrowers[0].ActiveLoans)

	returned, err := s.ReturnBorrow(ctx, rec.ID)
	require.NoError(t, err)
	require.True(t, returned.Returned)
	require.NotNil(t, returned.ReturnDate)

	book, err = s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 2, book.AvailableCopies)

	borrowers, err = s.ListBorrowers(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, borrowers[0].ActiveLoans)
}

func TestStore_BorrowNoCopies(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	book := mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Solaris", Author: "Lem", ISBN: "456", Copies: 1,
	})
	alice := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Alice", Email: "a@x.com"})
	bob := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Bob", Email: "b@x.com"})

	_, err := s.CreateBorrow(ctx, book.ID, alice.ID, 14)
	require.NoError(t, err)

	_, err = s.CreateBorrow(ctx, book.ID, bob.ID, 14)
	require.ErrorIs(t, err, errs.ErrNoCopies)

	// The failed borrow must not have touched any counter or the ledger.
	book, err = s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 0, book.AvailableCopies)

	borrowers, err := s.ListBorrowers(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, borrowers[1].ActiveLoans)

	active, err := s.ActiveBorrows(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
}

func TestStore_BorrowUnknownRefs(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	book := mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 1,
	})

	_, err := s.CreateBorrow(ctx, 99, 1, 14)
	require.ErrorIs(t, err, errs.ErrBookNotFound)

	_, err = s.CreateBorrow(ctx, book.ID, 99, 14)
	require.ErrorIs(t, err, errs.ErrBorrowerNotFound)

	book, err = s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 1, book.AvailableCopies)
}

func TestStore_DoubleReturn(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	book := mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 2,
	})
	borrower := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Alice", Email: "a@x.com"})

	rec, err := s.CreateBorrow(ctx, book.ID, borrower.ID, 14)
	require.NoError(t, err)

	_, err = s.ReturnBorrow(ctx, rec.ID)
	require.NoError(t, err)

	_, err = s.ReturnBorrow(ctx, rec.ID)
	require.ErrorIs(t, err, errs.ErrBorrowNotFound)

	// Second return must not bump the counter again.
	book, err = s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 2, book.AvailableCopies)

	borrowers, err := s.ListBorrowers(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, borrowers[0].ActiveLoans)
}

func TestStore_DuplicateEmail(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Alice", Email: "a@x.com"})

	_, err := s.CreateBorrower(ctx, model.RegisterBorrowerRequest{Name: "Alice Clone", Email: "a@x.com"})
	require.ErrorIs(t, err, errs.ErrEmailTaken)

	// Same address with different case is a different borrower.
	_, err = s.CreateBorrower(ctx, model.RegisterBorrowerRequest{Name: "Alice Caps", Email: "A@x.com"})
	require.NoError(t, err)

	borrowers, err := s.ListBorrowers(ctx)
	require.NoError(t, err)
	require.Len(t, borrowers, 2)
}

func TestStore_DeleteBook(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	book := mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 1,
	})
	borrower := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Alice", Email: "a@x.com"})

	rec, err := s.CreateBorrow(ctx, book.ID, borrower.ID, 14)
	require.NoError(t, err)

	err = s.DeleteBook(ctx, book.ID)
	require.ErrorIs(t, err, errs.ErrCopiesOnLoan)

	_, err = s.GetBook(ctx, book.ID)
	require.NoError(t, err)

	_, err = s.ReturnBorrow(ctx, rec.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteBook(ctx, book.ID))
	_, err = s.GetBook(ctx, book.ID)
	require.ErrorIs(t, err, errs.ErrBookNotFound)

	require.ErrorIs(t, s.DeleteBook(ctx, 99), errs.ErrBookNotFound)
}

func TestStore_UpdateBook(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	book := mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 2, Description: "sand",
	})
	alice := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Alice", Email: "a@x.com"})
	bob := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Bob", Email: "b@x.com"})

	_, err := s.CreateBorrow(ctx, book.ID, alice.ID, 14)
	require.NoError(t, err)
	_, err = s.CreateBorrow(ctx, book.ID, bob.ID, 14)
	require.NoError(t, err)

	// Growing the total keeps the two outstanding loans counted.
	updated, err := s.UpdateBook(ctx, book.ID, model.UpdateBookRequest{Copies: 5})
	require.NoError(t, err)
	require.Equal(t, 5, updated.Copies)
	require.Equal(t, 3, updated.AvailableCopies)

	// Shrinking below the borrowed count clamps available at zero.
	updated, err = s.UpdateBook(ctx, book.ID, model.UpdateBookRequest{Copies: 1})
	require.NoError(t, err)
	require.Equal(t, 1, updated.Copies)
	require.Equal(t, 0, updated.AvailableCopies)

	// Empty fields are not applied; a description pointer is.
	empty := ""
	updated, err = s.UpdateBook(ctx, book.ID, model.UpdateBookRequest{Author: "Frank Herbert", Description: &empty})
	require.NoError(t, err)
	require.Equal(t, "Dune", updated.Title)
	require.Equal(t, "Frank Herbert", updated.Author)
	require.Equal(t, "", updated.Description)

	_, err = s.UpdateBook(ctx, 99, model.UpdateBookRequest{Title: "x"})
	require.ErrorIs(t, err, errs.ErrBookNotFound)
}

func TestStore_ListBooksFilters(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 1, Category: "Sci-Fi",
	})
	mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Hobbit", Author: "Tolkien", ISBN: "456", Copies: 1, Category: "Fantasy",
	})
	borrower := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Alice", Email: "a@x.com"})
	_, err := s.CreateBorrow(ctx, 2, borrower.ID, 14)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter model.BookFilter
		want   []string
	}{
		{name: "all", filter: model.BookFilter{}, want: []string{"Dune", "Hobbit"}},
		{name: "query matches title case-insensitively", filter: model.BookFilter{Query: "dune"}, want: []string{"Dune"}},
		{name: "query matches author", filter: model.BookFilter{Query: "tolk"}, want: []string{"Hobbit"}},
		{name: "query matches isbn", filter: model.BookFilter{Query: "123"}, want: []string{"Dune"}},
		{name: "query matches nothing", filter: model.BookFilter{Query: "999"}, want: []string{}},
		{name: "category is exact", filter: model.BookFilter{Category: "sci-fi"}, want: []string{"Dune"}},
		{name: "available", filter: model.BookFilter{Available: boolPtr(true)}, want: []string{"Dune"}},
		{name: "unavailable", filter: model.BookFilter{Available: boolPtr(false)}, want: []string{"Hobbit"}},
		{name: "filters compose", filter: model.BookFilter{Query: "o", Available: boolPtr(false)}, want: []string{"Hobbit"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			books, err := s.ListBooks(ctx, tt.filter)
			require.NoError(t, err)
			titles := make([]string, 0, len(books))
			for _, b := range books {
				titles = append(titles, b.Title)
			}
			require.Equal(t, tt.want, titles)
		})
	}
}

func TestStore_SearchBooks(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune", Author: "Frank Herbert", ISBN: "123", Copies: 1,
		Category: "Sci-Fi", Description: "Spice and sandworms",
	})
	mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune Messiah", Author: "Frank Herbert", ISBN: "124", Copies: 1,
		Category: "Sci-Fi",
	})

	// The advanced search also matches descriptions.
	results, err := s.SearchBooks(ctx, model.SearchFilter{Query: "sandworms"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Dune", results[0].Title)

	// Author filter is a substring match.
	results, err = s.SearchBooks(ctx, model.SearchFilter{Author: "herb"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = s.SearchBooks(ctx, model.SearchFilter{Query: "dune", Author: "tolkien"})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestStore_Categories(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	categories, err := s.Categories(ctx)
	require.NoError(t, err)
	require.Empty(t, categories)

	mustCreateBook(t, s, model.CreateBookRequest{Title: "a", Author: "a", ISBN: "1", Copies: 1, Category: "Sci-Fi"})
	mustCreateBook(t, s, model.CreateBookRequest{Title: "b", Author: "b", ISBN: "2", Copies: 1})
	mustCreateBook(t, s, model.CreateBookRequest{Title: "c", Author: "c", ISBN: "3", Copies: 1, Category: "Sci-Fi"})

	categories, err = s.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Sci-Fi", "General"}, categories)
}

func TestStore_Overdue(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	book := mustCreateBook(t, s, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 2,
	})
	alice := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Alice", Email: "a@x.com"})
	bob := mustCreateBorrower(t, s, model.RegisterBorrowerRequest{Name: "Bob", Email: "b@x.com"})

	short, err := s.CreateBorrow(ctx, book.ID, alice.ID, 7)
	require.NoError(t, err)
	_, err = s.CreateBorrow(ctx, book.ID, bob.ID, 30)
	require.NoError(t, err)

	overdue, err := s.OverdueBorrows(ctx)
	require.NoError(t, err)
	require.Empty(t, overdue)

	now = now.AddDate(0, 0, 8)
	overdue, err = s.OverdueBorrows(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Equal(t, short.ID, overdue[0].ID)

	// A returned record stays out of the overdue list even with a past due date.
	_, err = s.ReturnBorrow(ctx, short.ID)
	require.NoError(t, err)
	overdue, err = s.OverdueBorrows(ctx)
	require.NoError(t, err)
	require.Empty(t, overdue)
}

func boolPtr(b bool) *bool {
	return &b
}
