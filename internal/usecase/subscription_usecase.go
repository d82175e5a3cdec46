package usecase

import (
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type SubscriptionUseCase interface {
	Toggle(subscriberID, channelID string) (bool, error)
	ListChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error)
	ListSubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	notifications    NotificationPublisher
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	notifications NotificationPublisher,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		notifications:    notifications,
		logger:           logger,
	}
}

// Toggle flips the subscription edge and reports the new state. Two
// concurrent toggles-on race benignly: the store's unique pair index keeps
// at most one edge and the duplicate insert is absorbed.
func (uc *subscriptionUseCase) Toggle(subscriberID, channelID string) (bool, error) {
	if subscriberID == channelID {
		return false, fmt.Errorf("cannot subscribe to your own channel: %w", entity.ErrInvalidInput)
	}

	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return false, err
	}

	subscribed, err := uc.subscriptionRepo.Exists(subscriberID, channelID)
	if err != nil {
		uc.logger.Error("Failed to check subscription: %v", err)
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	if subscribed {
		if err := uc.subscriptionRepo.Delete(subscriberID, channelID); err != nil {
			uc.logger.Error("Failed to unsubscribe: %v", err)
			return false, fmt.Errorf("failed to unsubscribe: %w", err)
		}
		return false, nil
	}

	if err := uc.subscriptionRepo.Create(subscriberID, channelID); err != nil {
		uc.logger.Error("Failed to subscribe: %v", err)
		return false, fmt.Errorf("failed to subscribe: %w", err)
	}

	if uc.notifications != nil {
		go func() {
			task := map[string]interface{}{
				"type":          "subscription",
				"user_id":       channelID,
				"subscriber_id": subscriberID,
				"priority":      4,
			}
			if err := uc.notifications.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish subscription notification: %v", err)
			}
		}()
	}

	return true, nil
}

func (uc *subscriptionUseCase) ListChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error) {
	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return nil, err
	}
	return uc.subscriptionRepo.ListChannelSubscribers(channelID)
}

func (uc *subscriptionUseCase) ListSubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error) {
	if _, err := uc.userRepo.GetByID(subscriberID); err != nil {
		return nil, err
	}
	return uc.subscriptionRepo.ListSubscribedChannels(subscriberID)
}
