package usecase

import (
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type LikeUseCase interface {
	ToggleVideoLike(userID, videoID string) (bool, error)
	ToggleCommentLike(userID, commentID string) (bool, error)
	ToggleTweetLike(userID, tweetID string) (bool, error)
	ListLikedVideos(userID string) ([]entity.VideoListItem, error)
}

type likeUseCase struct {
	likeRepo      persistent.LikeRepository
	videoRepo     persistent.VideoRepository
	commentRepo   persistent.CommentRepository
	tweetRepo     persistent.TweetRepository
	notifications NotificationPublisher
	logger        *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	notifications NotificationPublisher,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:      likeRepo,
		videoRepo:     videoRepo,
		commentRepo:   commentRepo,
		tweetRepo:     tweetRepo,
		notifications: notifications,
		logger:        logger,
	}
}

func (uc *likeUseCase) ToggleVideoLike(userID, videoID string) (bool, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return false, err
	}

	liked, err := uc.toggle(userID, entity.LikeTargetVideo, videoID)
	if err != nil {
		return false, err
	}

	if liked && video.OwnerID != userID && uc.notifications != nil {
		go func() {
			task := map[string]interface{}{
				"type":     "like",
				"user_id":  video.OwnerID,
				"liker_id": userID,
				"video_id": videoID,
				"priority": 3,
			}
			if err := uc.notifications.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish like notification: %v", err)
			}
		}()
	}

	return liked, nil
}

func (uc *likeUseCase) ToggleCommentLike(userID, commentID string) (bool, error) {
	if _, err := uc.commentRepo.GetByID(commentID); err != nil {
		return false, err
	}
	return uc.toggle(userID, entity.LikeTargetComment, commentID)
}

func (uc *likeUseCase) ToggleTweetLike(userID, tweetID string) (bool, error) {
	if _, err := uc.tweetRepo.GetByID(tweetID); err != nil {
		return false, err
	}
	return uc.toggle(userID, entity.LikeTargetTweet, tweetID)
}

func (uc *likeUseCase) ListLikedVideos(userID string) ([]entity.VideoListItem, error) {
	return uc.likeRepo.ListLikedVideos(userID)
}

func (uc *likeUseCase) toggle(userID string, target entity.LikeTarget, targetID string) (bool, error) {
	liked, err := uc.likeRepo.Exists(userID, target, targetID)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return false, fmt.Errorf("failed to check like status: %w", err)
	}

	if liked {
		if err := uc.likeRepo.Delete(userID, target, targetID); err != nil {
			uc.logger.Error("Failed to remove like: %v", err)
			return false, fmt.Errorf("failed to remove like: %w", err)
		}
		return false, nil
	}

	if err := uc.likeRepo.Create(userID, target, targetID); err != nil {
		uc.logger.Error("Failed to create like: %v", err)
		return false, fmt.Errorf("failed to create like: %w", err)
	}
	return true, nil
}
