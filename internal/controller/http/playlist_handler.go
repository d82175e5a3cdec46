package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Description  Create a playlist owned by the authenticated user
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist name and description"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	playlist, err := h.playlistUseCase.Create(userID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// ListUserPlaylists godoc
// @Summary      List a user's playlists
// @Description  Get all playlists for a user with totals over published member videos
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /playlists/user/{userId} [get]
func (h *PlaylistHandler) ListUserPlaylists(c *gin.Context) {
	userID := c.Param("userId")

	playlists, err := h.playlistUseCase.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

// GetPlaylist godoc
// @Summary      Get playlist details
// @Description  Get a playlist with its published member videos and aggregate totals
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlistID := c.Param("id")

	playlist, err := h.playlistUseCase.GetDetail(playlistID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

// AddVideoToPlaylist godoc
// @Summary      Add a video to a playlist
// @Description  Add a video to a playlist. Allowed for the playlist owner or the video owner; adding an existing member is a no-op.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /playlists/{id}/videos/{videoId} [patch]
func (h *PlaylistHandler) AddVideoToPlaylist(c *gin.Context) {
	playlistID := c.Param("id")
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	if err := h.playlistUseCase.AddVideo(playlistID, videoID, userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Video added to playlist")
}

// RemoveVideoFromPlaylist godoc
// @Summary      Remove a video from a playlist
// @Description  Remove a video from a playlist. Allowed for the playlist owner or the video owner.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /playlists/{id}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideoFromPlaylist(c *gin.Context) {
	playlistID := c.Param("id")
	videoID := c.Param("videoId")
	userID := c.GetString("user_id")

	if err := h.playlistUseCase.RemoveVideo(playlistID, videoID, userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Video removed from playlist")
}

// UpdatePlaylist godoc
// @Summary      Update a playlist
// @Description  Update a playlist's name or description. Only the owner can update.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body UpdatePlaylistRequest true "Fields to update"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /playlists/{id} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	playlistID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var input usecase.UpdatePlaylistInput
	if req.Name != "" {
		input.Name = &req.Name
	}
	if req.Description != "" {
		input.Description = &req.Description
	}

	playlist, err := h.playlistUseCase.Update(playlistID, userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist updated successfully")
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Description  Delete a playlist. Only the owner can delete.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  Response
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	playlistID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.playlistUseCase.Delete(playlistID, userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Playlist deleted successfully")
}
