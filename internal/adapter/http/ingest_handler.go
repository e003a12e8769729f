package http

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/ingest"
)

type IngestHandler struct{ uc *ingest.Usecase }

func NewIngestHandler(uc *ingest.Usecase) *IngestHandler { return &IngestHandler{uc: uc} }

func (h *IngestHandler) IngestCustomers(c echo.Context) error {
	return h.run(c, h.uc.IngestCustomers)
}

func (h *IngestHandler) IngestLoans(c echo.Context) error {
	return h.run(c, h.uc.IngestLoans)
}

func (h *IngestHandler) run(c echo.Context, fn func(context.Context, io.Reader) (*ingest.Summary, error)) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing multipart file field \"file\""})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer f.Close()

	s, err := fn(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}
