package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/4lucard7/BlogApi/internal/core/ports"
)

type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type createContactRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"max=30"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
	Type    string `json:"type"    validate:"required,oneof=volunteer contact partnership"`
}

// Create records an inbound contact-form submission. Public, no auth.
//
// @Summary      Submit a contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Submission"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.contactService.Create(c.Request().Context(), ports.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contact)
}

// GetAll lists every submission. Admin only.
//
// @Summary      List contact submissions
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Contact
// @Failure      403  {object}  map[string]string
// @Router       /contact [get]
func (h *ContactHandler) GetAll(c echo.Context) error {
	contacts, err := h.contactService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

// Get returns a single submission. Admin only.
//
// @Summary      Get a contact submission
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  map[string]string
// @Router       /contact/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	contact, err := h.contactService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// MarkRead flags a submission as handled. Admin only.
//
// @Summary      Mark a submission as read
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  map[string]string
// @Router       /contact/{id} [put]
func (h *ContactHandler) MarkRead(c echo.Context) error {
	contact, err := h.contactService.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete removes a submission. Admin only.
//
// @Summary      Delete a contact submission
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /contact/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.contactService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "contact submission has been deleted"})
}

// Count reports the total number of submissions. Admin only.
//
// @Summary      Count contact submissions
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /contact/count [get]
func (h *ContactHandler) Count(c echo.Context) error {
	n, err := h.contactService.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": n})
}
