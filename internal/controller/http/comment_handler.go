package http

import (
	"net/http"

	"friendboard/internal/usecase"
	"friendboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type CommentHandler struct {
	commentUseCase    usecase.CommentUseCase
	engagementUseCase usecase.EngagementUseCase
	redisClient       *redis.Client
	logger            *logger.Logger
}

func NewCommentHandler(
	commentUseCase usecase.CommentUseCase,
	engagementUseCase usecase.EngagementUseCase,
	redisClient *redis.Client,
	logger *logger.Logger,
) *CommentHandler {
	return &CommentHandler{
		commentUseCase:    commentUseCase,
		engagementUseCase: engagementUseCase,
		redisClient:       redisClient,
		logger:            logger,
	}
}

type CreateCommentRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ListComments godoc
// @Summary      List comments of a post
// @Description  All comments of a post, oldest first, with author profile. Gated by the parent post's visibility.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId query string true "Post ID"
// @Success      200  {array}   entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	viewerID := c.GetString("user_id")

	postID := c.Query("postId")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postId must be provided"})
		return
	}

	comments, err := h.commentUseCase.ListComments(viewerID, postID)
	if err != nil {
		if statusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to list comments: %v", err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a post
// @Description  Create a comment (content up to 1000 characters) on an existing post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment content"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	viewerID := c.GetString("user_id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(viewerID, req.PostID, req.Content)
	if err != nil {
		if statusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to create comment: %v", err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Delete a comment and its likes. Only the author can delete their own comment.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
	viewerID := c.GetString("user_id")

	if err := h.commentUseCase.DeleteComment(viewerID, commentID); err != nil {
		if statusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to delete comment: %v", err)
		}
		respondError(c, err)
		return
	}

	if h.redisClient != nil {
		h.redisClient.Del(c.Request.Context(), "comment:likes:"+commentID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment removed"})
}

// ToggleCommentLike godoc
// @Summary      Like or unlike a comment
// @Description  Toggle the viewer's like on a comment; repeated calls alternate between liked and unliked
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /comments/{id}/like [post]
func (h *CommentHandler) ToggleCommentLike(c *gin.Context) {
	commentID := c.Param("id")
	viewerID := c.GetString("user_id")

	state, err := h.engagementUseCase.ToggleCommentLike(c.Request.Context(), viewerID, commentID)
	if err != nil {
		if statusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to toggle comment like: %v", err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": string(state)})
}

// GetCommentInfo godoc
// @Summary      Get comment engagement info
// @Description  Like count and whether the viewer has liked the comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  entity.CommentInfo
// @Failure      500  {object}  map[string]string
// @Router       /comments/{id}/info [get]
func (h *CommentHandler) GetCommentInfo(c *gin.Context) {
	commentID := c.Param("id")
	viewerID := c.GetString("user_id")

	info, err := h.engagementUseCase.GetCommentInfo(c.Request.Context(), viewerID, commentID)
	if err != nil {
		h.logger.Error("Failed to aggregate comment info: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
