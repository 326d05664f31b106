package http

import (
	"net/http"
	"strconv"

	"friendboard/internal/usecase"
	"friendboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type PostHandler struct {
	postUseCase       usecase.PostUseCase
	feedUseCase       usecase.FeedUseCase
	engagementUseCase usecase.EngagementUseCase
	redisClient       *redis.Client
	logger            *logger.Logger
}

func NewPostHandler(
	postUseCase usecase.PostUseCase,
	feedUseCase usecase.FeedUseCase,
	engagementUseCase usecase.EngagementUseCase,
	redisClient *redis.Client,
	logger *logger.Logger,
) *PostHandler {
	return &PostHandler{
		postUseCase:       postUseCase,
		feedUseCase:       feedUseCase,
		engagementUseCase: engagementUseCase,
		redisClient:       redisClient,
		logger:            logger,
	}
}

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
}

// GetFeed godoc
// @Summary      Get the friend feed
// @Description  Paginated chronological feed of posts by the viewer and the viewer's friends (10 per page, newest first)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "1-indexed page, values below 1 are treated as 1"
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	viewerID := c.GetString("user_id")

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil {
			page = p
		}
	}

	posts, err := h.feedUseCase.GetFeed(viewerID, page)
	if err != nil {
		h.logger.Error("Failed to fetch feed: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a text post with an optional image reference (content up to 60000 characters)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post content"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	viewerID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(viewerID, req.Content, req.ImageURL)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Fetch a single post; 401 if the post exists but its author is not in the viewer's friend graph
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	post, err := h.postUseCase.GetPost(viewerID, postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetPostInfo godoc
// @Summary      Get post engagement info
// @Description  Comment count, like count and whether the viewer has liked the post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.PostInfo
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/info [get]
func (h *PostHandler) GetPostInfo(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	info, err := h.engagementUseCase.GetPostInfo(c.Request.Context(), viewerID, postID)
	if err != nil {
		h.logger.Error("Failed to aggregate post info: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// TogglePostLike godoc
// @Summary      Like or unlike a post
// @Description  Toggle the viewer's like on a post; repeated calls alternate between liked and unliked
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) TogglePostLike(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	state, err := h.engagementUseCase.TogglePostLike(c.Request.Context(), viewerID, postID)
	if err != nil {
		h.logger.Error("Failed to toggle post like: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": string(state)})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post together with its comments and likes. Only the author can delete their own post.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	if err := h.postUseCase.DeletePost(viewerID, postID); err != nil {
		if statusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to delete post: %v", err)
		}
		respondError(c, err)
		return
	}

	if h.redisClient != nil {
		h.redisClient.Del(c.Request.Context(), "post:likes:"+postID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post removed"})
}
