package usecase

import (
	"testing"

	"vidtube/internal/entity"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetCurrentUser_StripsSecrets(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo, new(MockBlobStore), logger.New())

	user := &entity.User{ID: "user-1", Username: "alice", Password: "hash", RefreshToken: "token"}
	userRepo.On("GetByID", "user-1").Return(user, nil)

	got, err := uc.GetCurrentUser("user-1")

	assert.NoError(t, err)
	assert.Empty(t, got.Password)
	assert.Empty(t, got.RefreshToken)
}

func TestUpdateAccount_RequiresBothFields(t *testing.T) {
	uc := NewUserUseCase(new(MockUserRepository), new(MockBlobStore), logger.New())

	_, err := uc.UpdateAccount("user-1", "", "alice@test.com")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	_, err = uc.UpdateAccount("user-1", "Alice Anders", "")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestUpdateAccount_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo, new(MockBlobStore), logger.New())

	user := &entity.User{ID: "user-1", FullName: "Old Name", Email: "old@test.com"}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	userRepo.On("Update", mock.Anything).Return(nil)

	got, err := uc.UpdateAccount("user-1", "New Name", "new@test.com")

	assert.NoError(t, err)
	assert.Equal(t, "New Name", got.FullName)
	assert.Equal(t, "new@test.com", got.Email)
}

func TestUpdateAvatar_ReplacesOldBlob(t *testing.T) {
	userRepo := new(MockUserRepository)
	blobStore := new(MockBlobStore)
	uc := NewUserUseCase(userRepo, blobStore, logger.New())

	user := &entity.User{ID: "user-1", AvatarURL: "http://blob/avatars/old.png"}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	blobStore.On("UploadFile", mock.Anything, mock.Anything, "image/png").
		Return("http://blob/avatars/new.png", nil)
	userRepo.On("Update", mock.Anything).Return(nil)
	blobStore.On("DeleteFileByURL", "http://blob/avatars/old.png").Return(nil)

	got, err := uc.UpdateAvatar("user-1", FileInput{Reader: readerOf("img"), ContentType: "image/png"})

	assert.NoError(t, err)
	assert.Equal(t, "http://blob/avatars/new.png", got.AvatarURL)
	blobStore.AssertExpectations(t)
}

func TestUpdateAvatar_OldBlobDeleteFailureIgnored(t *testing.T) {
	userRepo := new(MockUserRepository)
	blobStore := new(MockBlobStore)
	uc := NewUserUseCase(userRepo, blobStore, logger.New())

	user := &entity.User{ID: "user-1", AvatarURL: "http://blob/avatars/old.png"}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	blobStore.On("UploadFile", mock.Anything, mock.Anything, "image/png").
		Return("http://blob/avatars/new.png", nil)
	userRepo.On("Update", mock.Anything).Return(nil)
	blobStore.On("DeleteFileByURL", "http://blob/avatars/old.png").Return(assert.AnError)

	got, err := uc.UpdateAvatar("user-1", FileInput{Reader: readerOf("img"), ContentType: "image/png"})

	assert.NoError(t, err)
	assert.Equal(t, "http://blob/avatars/new.png", got.AvatarURL)
}

func TestUpdateCoverImage_MissingFile(t *testing.T) {
	uc := NewUserUseCase(new(MockUserRepository), new(MockBlobStore), logger.New())

	_, err := uc.UpdateCoverImage("user-1", FileInput{})

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestGetChannelProfile_EmptyUsername(t *testing.T) {
	uc := NewUserUseCase(new(MockUserRepository), new(MockBlobStore), logger.New())

	_, err := uc.GetChannelProfile("  ", "viewer-1")

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestGetChannelProfile_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo, new(MockBlobStore), logger.New())

	profile := &entity.ChannelProfile{
		ID:               "channel-1",
		Username:         "alice",
		SubscribersCount: 5,
		IsSubscribed:     true,
	}
	userRepo.On("GetChannelProfile", "alice", "viewer-1").Return(profile, nil)

	got, err := uc.GetChannelProfile("alice", "viewer-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), got.SubscribersCount)
	assert.True(t, got.IsSubscribed)
}

func TestGetWatchHistory_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo, new(MockBlobStore), logger.New())

	history := []entity.VideoListItem{{ID: "video-1"}, {ID: "video-2"}}
	userRepo.On("GetWatchHistory", "user-1").Return(history, nil)

	got, err := uc.GetWatchHistory("user-1")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
