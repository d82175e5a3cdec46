package http

import (
	"net/http"
	"strconv"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

// ListVideos godoc
// @Summary      List videos
// @Description  List published videos with optional search, owner filter, sorting and pagination
// @Tags         videos
// @Produce      json
// @Param        query query string false "Search in title and description"
// @Param        userId query string false "Filter by owner"
// @Param        sortBy query string false "Sort field (created_at, views, duration, title)"
// @Param        sortType query string false "Sort direction (asc or desc)"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 50)"
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	params := entity.VideoListParams{
		Query:     c.Query("query"),
		OwnerID:   c.Query("userId"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortType", "desc"),
		Page:      parsePositiveInt(c.Query("page"), 1),
		Limit:     parsePositiveInt(c.Query("limit"), 10),
	}
	if params.Limit > 50 {
		params.Limit = 50
	}

	page, err := h.videoUseCase.List(params)
	if err != nil {
		h.logger.Error("Failed to list videos: %v", err)
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, page, "Videos fetched successfully")
}

// PublishVideo godoc
// @Summary      Publish a video
// @Description  Upload a video file and thumbnail and create a published video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string true "Video description"
// @Param        duration formData number false "Duration in seconds"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /videos [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Title       string  `form:"title" binding:"required"`
		Description string  `form:"description" binding:"required"`
		Duration    float64 `form:"duration"`
	}
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	videoFile, err := openFormFile(c, "videoFile")
	if err != nil {
		respondBadRequest(c, "Video file is required")
		return
	}
	defer videoFile.Close()

	thumbnail, err := openFormFile(c, "thumbnail")
	if err != nil {
		respondBadRequest(c, "Thumbnail is required")
		return
	}
	defer thumbnail.Close()

	video, err := h.videoUseCase.Publish(userID, usecase.PublishVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		VideoFile:   videoFile.Input(),
		Thumbnail:   thumbnail.Input(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, video, "Video published successfully")
}

// GetVideo godoc
// @Summary      Get video details
// @Description  Get a video with owner details and viewer flags; increments views and records watch history
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	videoID := c.Param("id")
	viewerID := c.GetString("user_id")

	detail, err := h.videoUseCase.GetDetail(videoID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, detail, "Video fetched successfully")
}

// UpdateVideo godoc
// @Summary      Update a video
// @Description  Update title, description or thumbnail. Only the owner can update.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        title formData string false "Video title"
// @Param        description formData string false "Video description"
// @Param        thumbnail formData file false "Thumbnail image"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /videos/{id} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	var input usecase.UpdateVideoInput
	if title := c.PostForm("title"); title != "" {
		input.Title = &title
	}
	if description := c.PostForm("description"); description != "" {
		input.Description = &description
	}
	if thumbnail, err := openFormFile(c, "thumbnail"); err == nil {
		defer thumbnail.Close()
		thumbInput := thumbnail.Input()
		input.Thumbnail = &thumbInput
	}

	video, err := h.videoUseCase.Update(videoID, userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video updated successfully")
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Description  Delete a video and its stored files. Only the owner can delete.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.videoUseCase.Delete(videoID, userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Video deleted successfully")
}

// TogglePublish godoc
// @Summary      Toggle publish status
// @Description  Flip a video between published and unpublished. Only the owner can toggle.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /videos/{id}/toggle-publish [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	video, err := h.videoUseCase.TogglePublish(videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Publish status toggled successfully")
}

func parsePositiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
