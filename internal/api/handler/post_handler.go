package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/4lucard7/BlogApi/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
	uploads     UploadConfig
}

func NewPostHandler(postService ports.PostService, uploads UploadConfig) *PostHandler {
	return &PostHandler{postService: postService, uploads: uploads}
}

type updatePostRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty,min=10"`
	Category    *string `json:"category"    validate:"omitempty,max=100"`
}

// Create publishes a new post. Multipart form: title, description, category
// text fields plus the image file.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true  "Title"
// @Param        description  formData  string  true  "Description"
// @Param        category     formData  string  true  "Category"
// @Param        image        formData  file    true  "Image file"
// @Success      201  {object}  domain.Post
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	category := c.FormValue("category")
	if title == "" || description == "" || category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title, description and category are required")
	}

	path, err := stageUpload(c, h.uploads, true)
	if err != nil {
		return err
	}

	post, err := h.postService.Create(c.Request().Context(), ports.CreatePostInput{
		Title:       title,
		Description: description,
		Category:    category,
		OwnerID:     who.ID,
		ImagePath:   path,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// List returns the paginated feed, newest first.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        page      query     int     false  "Page number (1-based)"
// @Success      200  {array}  domain.Post
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	posts, err := h.postService.List(c.Request().Context(), ports.ListPostsFilter{
		Category: c.QueryParam("category"),
		Page:     page,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns a single post.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update changes a post's text fields. Owner only.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID"
// @Param        body  body      updatePostRequest  true  "Fields to change"
// @Success      200   {object}  domain.Post
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Update(c.Request().Context(), who, c.Param("id"), ports.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// UpdateImage replaces a post's image. Owner only.
//
// @Summary      Replace a post image
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "Post ID"
// @Param        image  formData  file    true  "Image file"
// @Success      200    {object}  domain.Post
// @Failure      403    {object}  map[string]string
// @Router       /posts/update-image/{id} [put]
func (h *PostHandler) UpdateImage(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	path, err := stageUpload(c, h.uploads, true)
	if err != nil {
		return err
	}

	post, err := h.postService.UpdateImage(c.Request().Context(), who, c.Param("id"), path)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ToggleLike flips the caller's membership in the post's like set.
//
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/like/{id} [put]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	post, err := h.postService.ToggleLike(c.Request().Context(), who, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post and its remote image. Owner or admin.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), who, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post has been deleted"})
}

// Count reports the total number of posts. Admin only.
//
// @Summary      Count posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /posts/count [get]
func (h *PostHandler) Count(c echo.Context) error {
	n, err := h.postService.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": n})
}
