package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type TweetUseCase interface {
	Create(ownerID, content string) (*entity.Tweet, error)
	ListForUser(userID, viewerID string) ([]entity.TweetView, error)
	Update(tweetID, principalID, content string) (*entity.Tweet, error)
	Delete(tweetID, principalID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

func NewTweetUseCase(
	tweetRepo persistent.TweetRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *tweetUseCase) Create(ownerID, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("tweet cannot be empty: %w", entity.ErrInvalidInput)
	}

	tweet := &entity.Tweet{
		OwnerID: ownerID,
		Content: content,
	}

	if err := uc.tweetRepo.Create(tweet); err != nil {
		uc.logger.Error("Failed to create tweet: %v", err)
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}

	return tweet, nil
}

func (uc *tweetUseCase) ListForUser(userID, viewerID string) ([]entity.TweetView, error) {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	return uc.tweetRepo.ListForUser(userID, viewerID)
}

func (uc *tweetUseCase) Update(tweetID, principalID, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("tweet cannot be empty: %w", entity.ErrInvalidInput)
	}

	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(principalID, tweet); err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := uc.tweetRepo.Update(tweet); err != nil {
		uc.logger.Error("Failed to update tweet: %v", err)
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}

	return tweet, nil
}

func (uc *tweetUseCase) Delete(tweetID, principalID string) error {
	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		return err
	}
	if err := requireOwner(principalID, tweet); err != nil {
		return err
	}

	if err := uc.tweetRepo.Delete(tweetID); err != nil {
		uc.logger.Error("Failed to delete tweet: %v", err)
		return fmt.Errorf("failed to delete tweet: %w", err)
	}

	return nil
}
