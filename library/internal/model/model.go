package model

import (
	"time"
)

type Book struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Copies          int       `json:"copies"`
	AvailableCopies int       `json:"availableCopies"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	DateAdded       time.Time `json:"dateAdded"`
}

type Borrower struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	RegistrationDate time.Time `json:"registrationDate"`
	ActiveLoans      int       `json:"activeLoans"`
}

// BorrowRecord is the loan ledger entry. BookTitle and BorrowerName are
// snapshots taken at borrow time and are not updated if the referenced
// entities change later.
type BorrowRecord struct {
	ID           int        `json:"id"`
	BookID       int        `json:"bookId"`
	BorrowerID   int        `json:"borrowerId"`
	BookTitle    string     `json:"bookTitle"`
	BorrowerName string     `json:"borrowerName"`
	BorrowDate   time.Time  `json:"borrowDate"`
	DueDate      time.Time  `json:"dueDate"`
	Returned     bool       `json:"returned"`
	ReturnDate   *time.Time `json:"returnDate,omitempty"`
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	ISBN        string `json:"isbn" validate:"required"`
	Copies      int    `json:"copies" validate:"required,gt=0"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// UpdateBookRequest carries a partial update: string fields apply when
// non-empty, Copies when positive. Description is a pointer so an explicit
// empty string clears the field.
type UpdateBookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	ISBN        string  `json:"isbn"`
	Copies      int     `json:"copies"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

type RegisterBorrowerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone"`
}

type BorrowRequest struct {
	BookID       int `json:"bookId" validate:"required"`
	BorrowerID   int `json:"borrowerId" validate:"required"`
	DaysToReturn int `json:"daysToReturn" validate:"gte=0"`
}

type ReturnRequest struct {
	BorrowID int `json:"borrowId" validate:"required"`
}

type BookFilter struct {
	Query     string
	Category  string
	Available *bool
}

type SearchFilter struct {
	Query     string
	Category  string
	Author    string
	Available *bool
}

type ListBooks struct {
	Books []Book `json:"books"`
	Total int    `json:"total"`
}

type SearchResults struct {
	Results []Book `json:"results"`
	Total   int    `json:"total"`
}

type Categories struct {
	Categories []string `json:"categories"`
}

type ListBorrowers struct {
	Borrowers []Borrower `json:"borrowers"`
	Total     int        `json:"total"`
}

type ListBorrowed struct {
	BorrowedBooks []BorrowRecord `json:"borrowedBooks"`
	Total         int            `json:"total"`
}

type ListOverdue struct {
	OverdueBooks []BorrowRecord `json:"overdueBooks"`
	Total        int            `json:"total"`
}

type BookResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

type GetBookResponse struct {
	Book Book `json:"book"`
}

type BorrowerResponse struct {
	Message  string   `json:"message"`
	Borrower Borrower `json:"borrower"`
}

type BorrowResponse struct {
	Message      string       `json:"message"`
	BorrowRecord BorrowRecord `json:"borrowRecord"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
