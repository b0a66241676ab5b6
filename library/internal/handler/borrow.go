package handler

import (
	"net/http"

	"github.com/libkeeper/library-service/library/internal/errs"
	"github.com/libkeeper/library-service/library/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) BorrowBook(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Book ID and Borrower ID are required")
	}
	rec, err := h.ledgerSvc.BorrowBook(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrBookNotFound) || errors.Is(err, errs.ErrBorrowerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, errs.ErrNoCopies) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, model.BorrowResponse{
		Message:      "Book borrowed successfully",
		BorrowRecord: rec,
	})
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Borrow ID is required")
	}
	rec, err := h.ledgerSvc.ReturnBook(c.Request().Context(), req.BorrowID)
	if err != nil {
		if errors.Is(err, errs.ErrBorrowNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.BorrowResponse{
		Message:      "Book returned successfully",
		BorrowRecord: rec,
	})
}

func (h *Handler) GetBorrowed(c echo.Context) error {
	records, err := h.ledgerSvc.ListBorrowed(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.ListBorrowed{BorrowedBooks: records, Total: len(records)})
}

func (h *Handler) GetOverdue(c echo.Context) error {
	records, err := h.ledgerSvc.ListOverdue(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.ListOverdue{OverdueBooks: records, Total: len(records)})
}
