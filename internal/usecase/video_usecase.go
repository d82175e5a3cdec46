package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"

	"github.com/google/uuid"
)

type PublishVideoInput struct {
	Title       string
	Description string
	Duration    float64
	VideoFile   FileInput
	Thumbnail   FileInput
}

type UpdateVideoInput struct {
	Title       *string
	Description *string
	Thumbnail   *FileInput
}

type VideoUseCase interface {
	Publish(ownerID string, input PublishVideoInput) (*entity.Video, error)
	List(params entity.VideoListParams) (*entity.VideoPage, error)
	GetDetail(videoID, viewerID string) (*entity.VideoDetail, error)
	Update(videoID, principalID string, input UpdateVideoInput) (*entity.Video, error)
	Delete(videoID, principalID string) error
	TogglePublish(videoID, principalID string) (*entity.Video, error)
}

type videoUseCase struct {
	videoRepo persistent.VideoRepository
	userRepo  persistent.UserRepository
	blobStore BlobStore
	logger    *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	blobStore BlobStore,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo: videoRepo,
		userRepo:  userRepo,
		blobStore: blobStore,
		logger:    logger,
	}
}

func (uc *videoUseCase) Publish(ownerID string, input PublishVideoInput) (*entity.Video, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("title and description are required: %w", entity.ErrInvalidInput)
	}
	if input.VideoFile.Reader == nil {
		return nil, fmt.Errorf("video file is required: %w", entity.ErrInvalidInput)
	}
	if input.Thumbnail.Reader == nil {
		return nil, fmt.Errorf("thumbnail is required: %w", entity.ErrInvalidInput)
	}

	videoURL, err := uc.blobStore.UploadFile("videos/"+uuid.New().String(), input.VideoFile.Reader, input.VideoFile.ContentType)
	if err != nil {
		uc.logger.Error("Failed to upload video file: %v", err)
		return nil, fmt.Errorf("failed to upload video file: %w", err)
	}

	thumbnailURL, err := uc.blobStore.UploadFile("thumbnails/"+uuid.New().String(), input.Thumbnail.Reader, input.Thumbnail.ContentType)
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail: %v", err)
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	video := &entity.Video{
		OwnerID:      ownerID,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Title:        input.Title,
		Description:  input.Description,
		Duration:     input.Duration,
		IsPublished:  true,
	}

	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	return video, nil
}

func (uc *videoUseCase) List(params entity.VideoListParams) (*entity.VideoPage, error) {
	return uc.videoRepo.List(params)
}

// GetDetail is a read with an observable side effect: every successful fetch
// bumps the view counter by exactly one and does a dedup append to the
// viewer's watch history.
func (uc *videoUseCase) GetDetail(videoID, viewerID string) (*entity.VideoDetail, error) {
	detail, err := uc.videoRepo.GetDetail(videoID, viewerID)
	if err != nil {
		return nil, err
	}

	if err := uc.videoRepo.IncrementViews(videoID); err != nil {
		uc.logger.Error("Failed to increment views for video %s: %v", videoID, err)
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}

	if err := uc.userRepo.AddToWatchHistory(viewerID, videoID); err != nil {
		uc.logger.Error("Failed to record watch history for user %s: %v", viewerID, err)
		return nil, fmt.Errorf("failed to record watch history: %w", err)
	}

	return detail, nil
}

func (uc *videoUseCase) Update(videoID, principalID string, input UpdateVideoInput) (*entity.Video, error) {
	if input.Title == nil && input.Description == nil && input.Thumbnail == nil {
		return nil, fmt.Errorf("no fields to update: %w", entity.ErrInvalidInput)
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(principalID, video); err != nil {
		return nil, err
	}

	oldThumbnailURL := ""
	if input.Thumbnail != nil {
		thumbnailURL, err := uc.blobStore.UploadFile("thumbnails/"+uuid.New().String(), input.Thumbnail.Reader, input.Thumbnail.ContentType)
		if err != nil {
			uc.logger.Error("Failed to upload thumbnail: %v", err)
			return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
		oldThumbnailURL = video.ThumbnailURL
		video.ThumbnailURL = thumbnailURL
	}
	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.Description != nil {
		video.Description = *input.Description
	}

	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to update video: %v", err)
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	if oldThumbnailURL != "" {
		if err := uc.blobStore.DeleteFileByURL(oldThumbnailURL); err != nil {
			uc.logger.Warn("Failed to delete old thumbnail %s: %v", oldThumbnailURL, err)
		}
	}

	return video, nil
}

// Delete removes the entity first; blob deletion afterwards is best-effort
// and never rolls the entity delete back.
func (uc *videoUseCase) Delete(videoID, principalID string) error {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return err
	}
	if err := requireOwner(principalID, video); err != nil {
		return err
	}

	if err := uc.videoRepo.Delete(videoID); err != nil {
		uc.logger.Error("Failed to delete video: %v", err)
		return fmt.Errorf("failed to delete video: %w", err)
	}

	if err := uc.blobStore.DeleteFileByURL(video.VideoURL); err != nil {
		uc.logger.Warn("Failed to delete video file %s: %v", video.VideoURL, err)
	}
	if err := uc.blobStore.DeleteFileByURL(video.ThumbnailURL); err != nil {
		uc.logger.Warn("Failed to delete thumbnail %s: %v", video.ThumbnailURL, err)
	}

	return nil
}

func (uc *videoUseCase) TogglePublish(videoID, principalID string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(principalID, video); err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to toggle publish status: %v", err)
		return nil, fmt.Errorf("failed to toggle publish status: %w", err)
	}

	return video, nil
}
