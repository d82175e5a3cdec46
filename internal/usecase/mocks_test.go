package usecase

import (
	"io"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

func readerOf(s string) io.Reader {
	return strings.NewReader(s)
}

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	args := m.Called(username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(userID, refreshToken string) error {
	args := m.Called(userID, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserRepository) GetWatchHistory(userID string) ([]entity.VideoListItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoListItem), args.Error(1)
}

func (m *MockUserRepository) AddToWatchHistory(userID, videoID string) error {
	args := m.Called(userID, videoID)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) List(params entity.VideoListParams) (*entity.VideoPage, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoPage), args.Error(1)
}

func (m *MockVideoRepository) GetDetail(videoID, viewerID string) (*entity.VideoDetail, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoDetail), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(videoID string) error {
	args := m.Called(videoID)
	return args.Error(0)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListForVideo(videoID, viewerID string, page, limit int) (*entity.CommentPage, error) {
	args := m.Called(videoID, viewerID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommentPage), args.Error(1)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

// MockTweetRepository is a mock implementation of persistent.TweetRepository
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(tweet *entity.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(id string) (*entity.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Update(tweet *entity.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTweetRepository) ListForUser(userID, viewerID string) ([]entity.TweetView, error) {
	args := m.Called(userID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TweetView), args.Error(1)
}

var _ persistent.TweetRepository = (*MockTweetRepository)(nil)

// MockPlaylistRepository is a mock implementation of persistent.PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(id string) (*entity.Playlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Update(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) ListForUser(userID string) ([]entity.PlaylistSummary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PlaylistSummary), args.Error(1)
}

func (m *MockPlaylistRepository) GetDetail(playlistID string) (*entity.PlaylistDetail, error) {
	args := m.Called(playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(playlistID, videoID string) error {
	args := m.Called(playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(playlistID, videoID string) error {
	args := m.Called(playlistID, videoID)
	return args.Error(0)
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Exists(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(subscriberID, channelID string) error {
	args := m.Called(subscriberID, channelID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(subscriberID, channelID string) error {
	args := m.Called(subscriberID, channelID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ChannelSubscriber), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SubscribedChannel), args.Error(1)
}

var _ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// MockLikeRepository is a mock implementation of persistent.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(likedByID string, target entity.LikeTarget, targetID string) (bool, error) {
	args := m.Called(likedByID, target, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Create(likedByID string, target entity.LikeTarget, targetID string) error {
	args := m.Called(likedByID, target, targetID)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(likedByID string, target entity.LikeTarget, targetID string) error {
	args := m.Called(likedByID, target, targetID)
	return args.Error(0)
}

func (m *MockLikeRepository) ListLikedVideos(userID string) ([]entity.VideoListItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoListItem), args.Error(1)
}

var _ persistent.LikeRepository = (*MockLikeRepository)(nil)

// MockBlobStore is a mock implementation of BlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) DeleteFileByURL(fileURL string) error {
	args := m.Called(fileURL)
	return args.Error(0)
}

var _ BlobStore = (*MockBlobStore)(nil)

// MockNotificationPublisher is a mock implementation of NotificationPublisher
type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishNotificationTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

var _ NotificationPublisher = (*MockNotificationPublisher)(nil)
