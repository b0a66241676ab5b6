package handler

import (
	"net/http"

	"github.com/libkeeper/library-service/library/internal/errs"
	"github.com/libkeeper/library-service/library/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) GetBorrowers(c echo.Context) error {
	borrowers, err := h.registrySvc.ListBorrowers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.ListBorrowers{Borrowers: borrowers, Total: len(borrowers)})
}

func (h *Handler) RegisterBorrower(c echo.Context) error {
	var req model.RegisterBorrowerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Name and email are required")
	}
	borrower, err := h.registrySvc.RegisterBorrower(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, model.BorrowerResponse{
		Message:  "Borrower registered successfully",
		Borrower: borrower,
	})
}
