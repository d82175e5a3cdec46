package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type CommentUseCase interface {
	Add(videoID, ownerID, content string) (*entity.Comment, error)
	ListForVideo(videoID, viewerID string, page, limit int) (*entity.CommentPage, error)
	Update(commentID, principalID, content string) (*entity.Comment, error)
	Delete(commentID, principalID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) Add(videoID, ownerID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is required: %w", entity.ErrInvalidInput)
	}

	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: content,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to add comment: %v", err)
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return comment, nil
}

func (uc *commentUseCase) ListForVideo(videoID, viewerID string, page, limit int) (*entity.CommentPage, error) {
	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListForVideo(videoID, viewerID, page, limit)
}

func (uc *commentUseCase) Update(commentID, principalID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is required: %w", entity.ErrInvalidInput)
	}

	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(principalID, comment); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment: %v", err)
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (uc *commentUseCase) Delete(commentID, principalID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if err := requireOwner(principalID, comment); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		uc.logger.Error("Failed to delete comment: %v", err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
