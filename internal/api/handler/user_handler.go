package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/4lucard7/BlogApi/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	uploads     UploadConfig
}

func NewUserHandler(userService ports.UserService, uploads UploadConfig) *UserHandler {
	return &UserHandler{userService: userService, uploads: uploads}
}

type updateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Bio      *string `json:"bio"      validate:"omitempty,max=500"`
}

// Profiles lists every registered user. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /users/profiles [get]
func (h *UserHandler) Profiles(c echo.Context) error {
	users, err := h.userService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Profile returns a single user's profile.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/profile/{id} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies partial self-service profile changes.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User ID"
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  map[string]string
// @Router       /users/profile/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), c.Param("id"), ports.UpdateProfileInput{
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UploadProfilePhoto replaces the caller's profile photo.
//
// @Summary      Upload a profile photo
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file"
// @Success      200    {object}  domain.User
// @Failure      400    {object}  map[string]string
// @Router       /users/profile/profile-photo-upload [post]
func (h *UserHandler) UploadProfilePhoto(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	path, err := stageUpload(c, h.uploads, true)
	if err != nil {
		return err
	}

	user, err := h.userService.UploadProfilePhoto(c.Request().Context(), who.ID, path)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes an account together with everything it owns.
//
// @Summary      Delete a user account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/profile/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "your profile has been deleted"})
}

// Count reports the total number of users. Admin only.
//
// @Summary      Count users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /users/count [get]
func (h *UserHandler) Count(c echo.Context) error {
	n, err := h.userService.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": n})
}
