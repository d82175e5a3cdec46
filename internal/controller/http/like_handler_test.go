package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeUseCase is a mock implementation of LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleVideoLike(userID, videoID string) (bool, error) {
	args := m.Called(userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ToggleCommentLike(userID, commentID string) (bool, error) {
	args := m.Called(userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ToggleTweetLike(userID, tweetID string) (bool, error) {
	args := m.Called(userID, tweetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ListLikedVideos(userID string) ([]entity.VideoListItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoListItem), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

func TestToggleVideoLike_LikedMessage(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/toggle/v/:videoId", asPrincipal("user-1", handler.ToggleVideoLike))

	mockUseCase.On("ToggleVideoLike", "user-1", "video-1").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/toggle/v/video-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response Response
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Liked successfully", response.Message)
	data := response.Data.(map[string]interface{})
	assert.Equal(t, true, data["liked"])
}

func TestToggleVideoLike_RemovedMessage(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/toggle/v/:videoId", asPrincipal("user-1", handler.ToggleVideoLike))

	mockUseCase.On("ToggleVideoLike", "user-1", "video-1").Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/toggle/v/video-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response Response
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Like removed", response.Message)
	data := response.Data.(map[string]interface{})
	assert.Equal(t, false, data["liked"])
}

func TestToggleCommentLike_NotFound(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/toggle/c/:commentId", asPrincipal("user-1", handler.ToggleCommentLike))

	mockUseCase.On("ToggleCommentLike", "user-1", "missing").Return(false, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/toggle/c/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Success)
}

func TestListLikedVideos_Success(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/likes/videos", asPrincipal("user-1", handler.ListLikedVideos))

	videos := []entity.VideoListItem{{ID: "video-1", Title: "Liked one"}}
	mockUseCase.On("ListLikedVideos", "user-1").Return(videos, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/videos", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response Response
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Success)
	mockUseCase.AssertExpectations(t)
}
