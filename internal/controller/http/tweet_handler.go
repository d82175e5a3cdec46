package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		logger:       logger,
	}
}

type TweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateTweet godoc
// @Summary      Create a tweet
// @Description  Post a short text update on the authenticated user's channel
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TweetRequest true "Tweet content"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tweet, err := h.tweetUseCase.Create(userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, tweet, "Tweet created successfully")
}

// ListUserTweets godoc
// @Summary      List a user's tweets
// @Description  Get all tweets for a user, newest first, with like counts and the viewer's like state
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) ListUserTweets(c *gin.Context) {
	userID := c.Param("userId")
	viewerID := c.GetString("user_id")

	tweets, err := h.tweetUseCase.ListForUser(userID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

// UpdateTweet godoc
// @Summary      Update a tweet
// @Description  Update a tweet's content. Only the author can update.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Param        request body TweetRequest true "Tweet content"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	tweetID := c.Param("id")
	userID := c.GetString("user_id")

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tweet, err := h.tweetUseCase.Update(tweetID, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Description  Delete a tweet. Only the author can delete.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	tweetID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.tweetUseCase.Delete(tweetID, userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Tweet deleted successfully")
}
