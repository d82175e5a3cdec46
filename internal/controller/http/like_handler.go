package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

func respondToggle(c *gin.Context, liked bool) {
	message := "Liked successfully"
	if !liked {
		message = "Like removed"
	}
	respond(c, http.StatusOK, gin.H{"liked": liked}, message)
}

// ToggleVideoLike godoc
// @Summary      Toggle video like
// @Description  Like a video, or remove the like if already liked
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	liked, err := h.likeUseCase.ToggleVideoLike(userID, videoID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondToggle(c, liked)
}

// ToggleCommentLike godoc
// @Summary      Toggle comment like
// @Description  Like a comment, or remove the like if already liked
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	commentID := c.Param("commentId")
	userID := c.GetString("user_id")

	liked, err := h.likeUseCase.ToggleCommentLike(userID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondToggle(c, liked)
}

// ToggleTweetLike godoc
// @Summary      Toggle tweet like
// @Description  Like a tweet, or remove the like if already liked
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	tweetID := c.Param("tweetId")
	userID := c.GetString("user_id")

	liked, err := h.likeUseCase.ToggleTweetLike(userID, tweetID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondToggle(c, liked)
}

// ListLikedVideos godoc
// @Summary      List liked videos
// @Description  Get the published videos the authenticated user has liked
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  ErrorResponse
// @Router       /likes/videos [get]
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.likeUseCase.ListLikedVideos(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
