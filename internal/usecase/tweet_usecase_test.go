package usecase

import (
	"testing"

	"vidtube/internal/entity"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTweet_Success(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	uc := NewTweetUseCase(tweetRepo, new(MockUserRepository), logger.New())

	tweetRepo.On("Create", mock.Anything).Return(nil)

	tweet, err := uc.Create("user-1", "hello world")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", tweet.OwnerID)
	assert.Equal(t, "hello world", tweet.Content)
}

func TestCreateTweet_Empty(t *testing.T) {
	uc := NewTweetUseCase(new(MockTweetRepository), new(MockUserRepository), logger.New())

	_, err := uc.Create("user-1", "  ")

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestListTweets_UserNotFound(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	userRepo := new(MockUserRepository)
	uc := NewTweetUseCase(tweetRepo, userRepo, logger.New())

	userRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	_, err := uc.ListForUser("missing", "viewer-1")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	tweetRepo.AssertNotCalled(t, "ListForUser", mock.Anything, mock.Anything)
}

func TestUpdateTweet_Forbidden(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	uc := NewTweetUseCase(tweetRepo, new(MockUserRepository), logger.New())

	tweet := &entity.Tweet{ID: "tweet-1", OwnerID: "author-1"}
	tweetRepo.On("GetByID", "tweet-1").Return(tweet, nil)

	_, err := uc.Update("tweet-1", "someone-else", "edited")

	assert.ErrorIs(t, err, entity.ErrForbidden)
	tweetRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateTweet_Success(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	uc := NewTweetUseCase(tweetRepo, new(MockUserRepository), logger.New())

	tweet := &entity.Tweet{ID: "tweet-1", OwnerID: "author-1", Content: "original"}
	tweetRepo.On("GetByID", "tweet-1").Return(tweet, nil)
	tweetRepo.On("Update", mock.Anything).Return(nil)

	updated, err := uc.Update("tweet-1", "author-1", "edited")

	assert.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestDeleteTweet_Forbidden(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	uc := NewTweetUseCase(tweetRepo, new(MockUserRepository), logger.New())

	tweet := &entity.Tweet{ID: "tweet-1", OwnerID: "author-1"}
	tweetRepo.On("GetByID", "tweet-1").Return(tweet, nil)

	err := uc.Delete("tweet-1", "someone-else")

	assert.ErrorIs(t, err, entity.ErrForbidden)
	tweetRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
