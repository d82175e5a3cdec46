package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	FullName   string
	Email      string
	Username   string
	Password   string
	Avatar     FileInput
	CoverImage *FileInput
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUseCase interface {
	Register(input RegisterInput) (*entity.User, error)
	Login(identifier, password string) (*entity.User, TokenPair, error)
	Logout(userID string) error
	Refresh(refreshToken string) (TokenPair, error)
	ChangePassword(userID, oldPassword, newPassword string) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	blobStore  BlobStore
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	blobStore BlobStore,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		blobStore:  blobStore,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(input RegisterInput) (*entity.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	username := strings.ToLower(strings.TrimSpace(input.Username))

	if fullName == "" || email == "" || username == "" || input.Password == "" {
		return nil, fmt.Errorf("all fields are required: %w", entity.ErrInvalidInput)
	}
	if input.Avatar.Reader == nil {
		return nil, fmt.Errorf("avatar is required: %w", entity.ErrInvalidInput)
	}

	if _, err := uc.userRepo.GetByUsernameOrEmail(username, email); err == nil {
		return nil, fmt.Errorf("user with email or username already exists: %w", entity.ErrConflict)
	}

	avatarURL, err := uc.blobStore.UploadFile("avatars/"+uuid.New().String(), input.Avatar.Reader, input.Avatar.ContentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	coverImageURL := ""
	if input.CoverImage != nil {
		coverImageURL, err = uc.blobStore.UploadFile("covers/"+uuid.New().String(), input.CoverImage.Reader, input.CoverImage.ContentType)
		if err != nil {
			uc.logger.Error("Failed to upload cover image: %v", err)
			return nil, fmt.Errorf("failed to upload cover image: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration: %w", err)
	}

	user := &entity.User{
		FullName:      fullName,
		Email:         email,
		Username:      username,
		Password:      string(hashedPassword),
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(identifier, password string) (*entity.User, TokenPair, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return nil, TokenPair{}, fmt.Errorf("username or email and password are required: %w", entity.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByUsernameOrEmail(identifier, identifier)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, TokenPair{}, fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	pair, err := uc.issueTokens(user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, pair, nil
}

// Logout clears the persisted refresh token, so every outstanding refresh
// token for the user becomes permanently unusable.
func (uc *authUseCase) Logout(userID string) error {
	return uc.userRepo.UpdateRefreshToken(userID, "")
}

// Refresh rotates the token pair. The presented token must verify AND match
// the persisted value exactly; issuing a new pair invalidates every earlier
// refresh token, which is what catches reuse.
func (uc *authUseCase) Refresh(refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, fmt.Errorf("refresh token is required: %w", entity.ErrUnauthorized)
	}

	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, fmt.Errorf("invalid refresh token: %w", entity.ErrUnauthorized)
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("invalid refresh token: %w", entity.ErrUnauthorized)
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return TokenPair{}, fmt.Errorf("refresh token is expired or already used: %w", entity.ErrUnauthorized)
	}

	return uc.issueTokens(user.ID)
}

func (uc *authUseCase) ChangePassword(userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", entity.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return fmt.Errorf("invalid old password: %w", entity.ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return fmt.Errorf("failed to change password: %w", err)
	}

	user.Password = string(hashedPassword)
	return uc.userRepo.Update(user)
}

func (uc *authUseCase) issueTokens(userID string) (TokenPair, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(userID)
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return TokenPair{}, fmt.Errorf("failed to generate tokens: %w", err)
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(userID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return TokenPair{}, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := uc.userRepo.UpdateRefreshToken(userID, refreshToken); err != nil {
		uc.logger.Error("Failed to persist refresh token: %v", err)
		return TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
