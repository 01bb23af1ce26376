package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/4lucard7/BlogApi/internal/core/ports"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentRequest struct {
	PostID string `json:"post_id" validate:"required"`
	Text   string `json:"text"    validate:"required,min=1,max=1000"`
}

type updateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// Create adds a comment to a post on behalf of the caller.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      404   {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Create(c.Request().Context(), ports.CreateCommentInput{
		PostID:   req.PostID,
		AuthorID: who.ID,
		Text:     req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetAll lists every comment. Admin only.
//
// @Summary      List all comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Comment
// @Failure      403  {object}  map[string]string
// @Router       /comments [get]
func (h *CommentHandler) GetAll(c echo.Context) error {
	comments, err := h.commentService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Update edits a comment's text. Author only.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment ID"
// @Param        body  body      updateCommentRequest  true  "New text"
// @Success      200   {object}  domain.Comment
// @Failure      403   {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Update(c.Request().Context(), who, c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete removes a comment. Author or admin.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), who, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "comment has been deleted"})
}

// Count reports the total number of comments. Admin only.
//
// @Summary      Count comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /comments/count [get]
func (h *CommentHandler) Count(c echo.Context) error {
	n, err := h.commentService.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": n})
}
