package usecase

import (
	"testing"

	"vidtube/internal/entity"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestToggleSubscription_SelfSubscribeRejected(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	uc := NewSubscriptionUseCase(subRepo, new(MockUserRepository), nil, logger.New())

	_, err := uc.Toggle("user-1", "user-1")

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	subRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestToggleSubscription_ChannelNotFound(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := NewSubscriptionUseCase(subRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	_, err := uc.Toggle("user-1", "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestToggleSubscription_SubscribesWhenAbsent(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := NewSubscriptionUseCase(subRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "channel-1").Return(&entity.User{ID: "channel-1"}, nil)
	subRepo.On("Exists", "user-1", "channel-1").Return(false, nil)
	subRepo.On("Create", "user-1", "channel-1").Return(nil)

	subscribed, err := uc.Toggle("user-1", "channel-1")

	assert.NoError(t, err)
	assert.True(t, subscribed)
	subRepo.AssertExpectations(t)
}

func TestToggleSubscription_UnsubscribesWhenPresent(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := NewSubscriptionUseCase(subRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "channel-1").Return(&entity.User{ID: "channel-1"}, nil)
	subRepo.On("Exists", "user-1", "channel-1").Return(true, nil)
	subRepo.On("Delete", "user-1", "channel-1").Return(nil)

	subscribed, err := uc.Toggle("user-1", "channel-1")

	assert.NoError(t, err)
	assert.False(t, subscribed)
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToggleSubscription_TwiceRestoresOriginalState(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := NewSubscriptionUseCase(subRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "channel-1").Return(&entity.User{ID: "channel-1"}, nil)
	subRepo.On("Exists", "user-1", "channel-1").Return(false, nil).Once()
	subRepo.On("Create", "user-1", "channel-1").Return(nil).Once()
	subRepo.On("Exists", "user-1", "channel-1").Return(true, nil).Once()
	subRepo.On("Delete", "user-1", "channel-1").Return(nil).Once()

	first, err := uc.Toggle("user-1", "channel-1")
	assert.NoError(t, err)
	assert.True(t, first)

	second, err := uc.Toggle("user-1", "channel-1")
	assert.NoError(t, err)
	assert.False(t, second)

	subRepo.AssertExpectations(t)
}

func TestListChannelSubscribers_ChannelNotFound(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := NewSubscriptionUseCase(subRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	_, err := uc.ListChannelSubscribers("missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListSubscribedChannels_Success(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	userRepo := new(MockUserRepository)
	uc := NewSubscriptionUseCase(subRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1"}, nil)
	channels := []entity.SubscribedChannel{
		{Channel: entity.OwnerInfo{ID: "channel-1", Username: "alice"}},
	}
	subRepo.On("ListSubscribedChannels", "user-1").Return(channels, nil)

	got, err := uc.ListSubscribedChannels("user-1")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Channel.Username)
}
