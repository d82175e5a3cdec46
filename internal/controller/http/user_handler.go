package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// GetCurrentUser godoc
// @Summary      Get current user
// @Description  Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  ErrorResponse
// @Router       /users/current-user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.userUseCase.GetCurrentUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "Current user fetched successfully")
}

// UpdateAccount godoc
// @Summary      Update account details
// @Description  Update the authenticated user's full name and email
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateAccountRequest true "Account details"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.userUseCase.UpdateAccount(userID, req.FullName, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "Account details updated successfully")
}

// UpdateAvatar godoc
// @Summary      Update avatar
// @Description  Replace the authenticated user's avatar image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID := c.GetString("user_id")

	file, err := openFormFile(c, "avatar")
	if err != nil {
		respondBadRequest(c, "Avatar file is required")
		return
	}
	defer file.Close()

	user, err := h.userUseCase.UpdateAvatar(userID, file.Input())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "Avatar updated successfully")
}

// UpdateCoverImage godoc
// @Summary      Update cover image
// @Description  Replace the authenticated user's cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        coverImage formData file true "Cover image"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	userID := c.GetString("user_id")

	file, err := openFormFile(c, "coverImage")
	if err != nil {
		respondBadRequest(c, "Cover image file is required")
		return
	}
	defer file.Close()

	user, err := h.userUseCase.UpdateCoverImage(userID, file.Input())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "Cover image updated successfully")
}

// GetChannelProfile godoc
// @Summary      Get channel profile
// @Description  Get a channel profile by username, with subscription counts and the viewer's subscription state
// @Tags         users
// @Produce      json
// @Param        username path string true "Channel username"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/c/{username} [get]
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetString("user_id")

	profile, err := h.userUseCase.GetChannelProfile(username, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

// GetWatchHistory godoc
// @Summary      Get watch history
// @Description  Get the authenticated user's watch history with owner details
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  ErrorResponse
// @Router       /users/history [get]
func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	history, err := h.userUseCase.GetWatchHistory(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, history, "Watch history fetched successfully")
}
