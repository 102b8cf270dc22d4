package handlers

import (
	"net/http"

	"growe/internal/services"

	"github.com/labstack/echo/v4"
)

// RecordHandlers serves list/create/update for one entity type
type RecordHandlers[T services.Record] struct {
	service     services.RecordService[T]
	resource    string
	newDoc      func() T
	afterCreate func(T)
}

// NewRecordHandlers creates handlers for the entity named resource (used in messages)
func NewRecordHandlers[T services.Record](service services.RecordService[T], resource string, newDoc func() T) *RecordHandlers[T] {
	return &RecordHandlers[T]{
		service:  service,
		resource: resource,
		newDoc:   newDoc,
	}
}

// OnCreate registers a callback run after each successful create
func (h *RecordHandlers[T]) OnCreate(fn func(T)) *RecordHandlers[T] {
	h.afterCreate = fn
	return h
}

// List handles getting every stored record
func (h *RecordHandlers[T]) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err, h.resource)
	}
	return c.JSON(http.StatusOK, docs)
}

// Create handles creating a new record
func (h *RecordHandlers[T]) Create(c echo.Context) error {
	doc := h.newDoc()
	if err := c.Bind(doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format").SetInternal(err)
	}

	created, err := h.service.Create(c.Request().Context(), doc)
	if err != nil {
		return toHTTPError(err, h.resource)
	}

	if h.afterCreate != nil {
		h.afterCreate(created)
	}
	return c.JSON(http.StatusOK, created)
}

// Update handles replacing a record by id
func (h *RecordHandlers[T]) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, h.resource+" ID is required")
	}

	doc := h.newDoc()
	if err := c.Bind(doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format").SetInternal(err)
	}

	if err := h.service.Update(c.Request().Context(), id, doc); err != nil {
		return toHTTPError(err, h.resource)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": h.resource + " updated successfully",
	})
}
