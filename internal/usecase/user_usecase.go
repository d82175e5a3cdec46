package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"

	"github.com/google/uuid"
)

type UserUseCase interface {
	GetCurrentUser(userID string) (*entity.User, error)
	UpdateAccount(userID, fullName, email string) (*entity.User, error)
	UpdateAvatar(userID string, file FileInput) (*entity.User, error)
	UpdateCoverImage(userID string, file FileInput) (*entity.User, error)
	GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
	GetWatchHistory(userID string) ([]entity.VideoListItem, error)
}

type userUseCase struct {
	userRepo  persistent.UserRepository
	blobStore BlobStore
	logger    *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	blobStore BlobStore,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:  userRepo,
		blobStore: blobStore,
		logger:    logger,
	}
}

func (uc *userUseCase) GetCurrentUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (uc *userUseCase) UpdateAccount(userID, fullName, email string) (*entity.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return nil, fmt.Errorf("full name and email are required: %w", entity.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	user.Email = email
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update account: %v", err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (uc *userUseCase) UpdateAvatar(userID string, file FileInput) (*entity.User, error) {
	return uc.updateImage(userID, file, "avatars/")
}

func (uc *userUseCase) UpdateCoverImage(userID string, file FileInput) (*entity.User, error) {
	return uc.updateImage(userID, file, "covers/")
}

func (uc *userUseCase) updateImage(userID string, file FileInput, prefix string) (*entity.User, error) {
	if file.Reader == nil {
		return nil, fmt.Errorf("image file is required: %w", entity.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	newURL, err := uc.blobStore.UploadFile(prefix+uuid.New().String(), file.Reader, file.ContentType)
	if err != nil {
		uc.logger.Error("Failed to upload image: %v", err)
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	var oldURL string
	if prefix == "avatars/" {
		oldURL = user.AvatarURL
		user.AvatarURL = newURL
	} else {
		oldURL = user.CoverImageURL
		user.CoverImageURL = newURL
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	// Old blob removal is best-effort; the entity update already succeeded.
	if oldURL != "" {
		if err := uc.blobStore.DeleteFileByURL(oldURL); err != nil {
			uc.logger.Warn("Failed to delete old image %s: %v", oldURL, err)
		}
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (uc *userUseCase) GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required: %w", entity.ErrInvalidInput)
	}
	return uc.userRepo.GetChannelProfile(username, viewerID)
}

func (uc *userUseCase) GetWatchHistory(userID string) ([]entity.VideoListItem, error) {
	return uc.userRepo.GetWatchHistory(userID)
}
