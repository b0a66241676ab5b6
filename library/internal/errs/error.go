package errs

import (
	"errors"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBorrowerNotFound = errors.New("borrower not found")
	ErrBorrowNotFound   = errors.New("active borrow record not found")

	ErrEmailTaken   = errors.New("borrower with this email already exists")
	ErrNoCopies     = errors.New("no copies available for borrowing")
	ErrCopiesOnLoan = errors.New("cannot delete book with borrowed copies")
)
