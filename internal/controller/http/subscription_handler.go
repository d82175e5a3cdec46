package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// ToggleSubscription godoc
// @Summary      Toggle subscription
// @Description  Subscribe to a channel, or unsubscribe if already subscribed. Subscribing to your own channel is rejected.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	channelID := c.Param("channelId")
	userID := c.GetString("user_id")

	subscribed, err := h.subscriptionUseCase.Toggle(userID, channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Subscribed successfully"
	if !subscribed {
		message = "Unsubscribed successfully"
	}

	respond(c, http.StatusOK, gin.H{"subscribed": subscribed}, message)
}

// ListChannelSubscribers godoc
// @Summary      List channel subscribers
// @Description  Get the subscribers of a channel, with each subscriber's own subscriber count and whether the channel subscribes back
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) ListChannelSubscribers(c *gin.Context) {
	channelID := c.Param("channelId")

	subscribers, err := h.subscriptionUseCase.ListChannelSubscribers(channelID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

// ListSubscribedChannels godoc
// @Summary      List subscribed channels
// @Description  Get the channels a user subscribes to, each with its latest published video if any
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        subscriberId path string true "Subscriber (user) ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	subscriberID := c.Param("subscriberId")

	channels, err := h.subscriptionUseCase.ListSubscribedChannels(subscriberID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
