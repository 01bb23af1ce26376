package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

type EventHandler struct {
	eventService ports.EventService
	uploads      UploadConfig
}

func NewEventHandler(eventService ports.EventService, uploads UploadConfig) *EventHandler {
	return &EventHandler{eventService: eventService, uploads: uploads}
}

// parseEventCategory validates the past/upcoming discriminator.
func parseEventCategory(raw string) (string, error) {
	switch raw {
	case domain.EventPast, domain.EventUpcoming:
		return raw, nil
	default:
		return "", echo.NewHTTPError(http.StatusBadRequest, "category must be past or upcoming")
	}
}

// Create adds an event. Admin only. Multipart form: title, description,
// date (RFC 3339), location, category text fields plus an optional image.
//
// @Summary      Create an event
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  true   "Description"
// @Param        date         formData  string  true   "Date, RFC 3339"
// @Param        location     formData  string  false  "Location"
// @Param        category     formData  string  true   "past or upcoming"
// @Param        image        formData  file    false  "Image file"
// @Success      201  {object}  domain.Event
// @Failure      400  {object}  map[string]string
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and description are required")
	}

	date, err := time.Parse(time.RFC3339, c.FormValue("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be RFC 3339")
	}

	category, err := parseEventCategory(c.FormValue("category"))
	if err != nil {
		return err
	}

	path, err := stageUpload(c, h.uploads, false)
	if err != nil {
		return err
	}

	event, err := h.eventService.Create(c.Request().Context(), ports.CreateEventInput{
		Title:       title,
		Description: description,
		Date:        date,
		Location:    c.FormValue("location"),
		Category:    category,
		OwnerID:     who.ID,
		ImagePath:   path,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// List returns events, date-descending.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        category  query    string  false  "past or upcoming"
// @Success      200  {array}  domain.Event
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.eventService.List(c.Request().Context(), ports.ListEventsFilter{
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Get returns a single event.
//
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  map[string]string
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.eventService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Update changes an event's fields, optionally replacing its image. Admin
// only. Multipart form; absent fields are left unchanged.
//
// @Summary      Update an event
// @Tags         events
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Event ID"
// @Param        title        formData  string  false  "Title"
// @Param        description  formData  string  false  "Description"
// @Param        date         formData  string  false  "Date, RFC 3339"
// @Param        location     formData  string  false  "Location"
// @Param        category     formData  string  false  "past or upcoming"
// @Param        image        formData  file    false  "Replacement image"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  map[string]string
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	var input ports.UpdateEventInput

	if v := c.FormValue("title"); v != "" {
		input.Title = &v
	}
	if v := c.FormValue("description"); v != "" {
		input.Description = &v
	}
	if v := c.FormValue("location"); v != "" {
		input.Location = &v
	}
	if v := c.FormValue("date"); v != "" {
		date, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be RFC 3339")
		}
		input.Date = &date
	}
	if v := c.FormValue("category"); v != "" {
		category, err := parseEventCategory(v)
		if err != nil {
			return err
		}
		input.Category = &category
	}

	path, err := stageUpload(c, h.uploads, false)
	if err != nil {
		return err
	}
	input.ImagePath = path

	event, err := h.eventService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete removes an event and its remote image. Admin only.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.eventService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event has been deleted"})
}

// Count reports the total number of events. Admin only.
//
// @Summary      Count events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /events/count [get]
func (h *EventHandler) Count(c echo.Context) error {
	n, err := h.eventService.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": n})
}
