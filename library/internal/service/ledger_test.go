package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/libkeeper/library-service/library/internal/model"
	"github.com/libkeeper/library-service/library/internal/repository"
	"github.com/libkeeper/library-service/library/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLedger_BorrowBookDefaultDays(t *testing.T) {
	t.Parallel()
	log := zap.NewNop()
	store := repository.NewStore(log)
	catalog := service.NewCatalog(store, log)
	registry := service.NewRegistry(store, log)
	ledger := service.NewLedger(store, log)
	ctx := context.Background()

	book, err := catalog.CreateBook(ctx, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 1,
	})
	require.NoError(t, err)
	borrower, err := registry.RegisterBorrower(ctx, model.RegisterBorrowerRequest{
		Name: "Alice", Email: "a@x.com",
	})
	require.NoError(t, err)

	rec, err := ledger.BorrowBook(ctx, model.BorrowRequest{
		BookID:     book.ID,
		BorrowerID: borrower.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 14*24*time.Hour, rec.DueDate.Sub(rec.BorrowDate))
}

func TestLedger_BorrowBookExplicitDays(t *testing.T) {
	t.Parallel()
	log := zap.NewNop()
	store := repository.NewStore(log)
	catalog := service.NewCatalog(store, log)
	registry := service.NewRegistry(store, log)
	ledger := service.NewLedger(store, log)
	ctx := context.Background()

	book, err := catalog.CreateBook(ctx, model.CreateBookRequest{
		Title: "Dune", Author: "Herbert", ISBN: "123", Copies: 1,
	})
	require.NoError(t, err)
	borrower, err := registry.RegisterBorrower(ctx, model.RegisterBorrowerRequest{
		Name: "Alice", Email: "a@x.com",
	})
	require.NoError(t, err)

	rec, err := ledger.BorrowBook(ctx, model.BorrowRequest{
		BookID:       book.ID,
		BorrowerID:   borrower.ID,
		DaysToReturn: 7,
	})
	require.NoError(t, err)
	require.Equal(t, 7*24*time.Hour, rec.DueDate.Sub(rec.BorrowDate))
}
