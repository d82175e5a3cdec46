package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type UpdatePlaylistInput struct {
	Name        *string
	Description *string
}

type PlaylistUseCase interface {
	Create(ownerID, name, description string) (*entity.Playlist, error)
	ListForUser(userID string) ([]entity.PlaylistSummary, error)
	GetDetail(playlistID string) (*entity.PlaylistDetail, error)
	AddVideo(playlistID, videoID, principalID string) error
	RemoveVideo(playlistID, videoID, principalID string) error
	Update(playlistID, principalID string, input UpdatePlaylistInput) (*entity.Playlist, error)
	Delete(playlistID, principalID string) error
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) Create(ownerID, name, description string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("name and description are required: %w", entity.ErrInvalidInput)
	}

	playlist := &entity.Playlist{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}

	if err := uc.playlistRepo.Create(playlist); err != nil {
		uc.logger.Error("Failed to create playlist: %v", err)
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	return playlist, nil
}

func (uc *playlistUseCase) ListForUser(userID string) ([]entity.PlaylistSummary, error) {
	return uc.playlistRepo.ListForUser(userID)
}

func (uc *playlistUseCase) GetDetail(playlistID string) (*entity.PlaylistDetail, error) {
	return uc.playlistRepo.GetDetail(playlistID)
}

// AddVideo allows either the playlist owner or the video owner to change
// membership; anyone else is Forbidden.
func (uc *playlistUseCase) AddVideo(playlistID, videoID, principalID string) error {
	playlist, video, err := uc.loadMembershipPair(playlistID, videoID)
	if err != nil {
		return err
	}
	if err := requireMembershipRights(principalID, playlist, video); err != nil {
		return err
	}

	if err := uc.playlistRepo.AddVideo(playlistID, videoID); err != nil {
		uc.logger.Error("Failed to add video to playlist: %v", err)
		return fmt.Errorf("failed to add video to playlist: %w", err)
	}

	return nil
}

func (uc *playlistUseCase) RemoveVideo(playlistID, videoID, principalID string) error {
	playlist, video, err := uc.loadMembershipPair(playlistID, videoID)
	if err != nil {
		return err
	}
	if err := requireMembershipRights(principalID, playlist, video); err != nil {
		return err
	}

	if err := uc.playlistRepo.RemoveVideo(playlistID, videoID); err != nil {
		uc.logger.Error("Failed to remove video from playlist: %v", err)
		return fmt.Errorf("failed to remove video from playlist: %w", err)
	}

	return nil
}

func (uc *playlistUseCase) Update(playlistID, principalID string, input UpdatePlaylistInput) (*entity.Playlist, error) {
	if input.Name == nil && input.Description == nil {
		return nil, fmt.Errorf("no fields to update: %w", entity.ErrInvalidInput)
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(principalID, playlist); err != nil {
		return nil, err
	}

	if input.Name != nil {
		playlist.Name = *input.Name
	}
	if input.Description != nil {
		playlist.Description = *input.Description
	}

	if err := uc.playlistRepo.Update(playlist); err != nil {
		uc.logger.Error("Failed to update playlist: %v", err)
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}

	return playlist, nil
}

func (uc *playlistUseCase) Delete(playlistID, principalID string) error {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return err
	}
	if err := requireOwner(principalID, playlist); err != nil {
		return err
	}

	if err := uc.playlistRepo.Delete(playlistID); err != nil {
		uc.logger.Error("Failed to delete playlist: %v", err)
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return nil
}

func (uc *playlistUseCase) loadMembershipPair(playlistID, videoID string) (*entity.Playlist, *entity.Video, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, nil, err
	}
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, nil, err
	}
	return playlist, video, nil
}

func requireMembershipRights(principalID string, playlist *entity.Playlist, video *entity.Video) error {
	if playlist.OwnerID != principalID && video.OwnerID != principalID {
		return fmt.Errorf("only the playlist owner or the video owner can change membership: %w", entity.ErrForbidden)
	}
	return nil
}
