package usecase

import (
	"testing"
	"time"

	"vidtube/internal/entity"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTService() *jwt.Service {
	return jwt.NewService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	user := &entity.User{
		ID:       "user-1",
		Username: "alice",
		Email:    "alice@test.com",
		Password: hashPassword(t, "password123"),
	}

	userRepo.On("GetByUsernameOrEmail", "alice", "alice").Return(user, nil)
	userRepo.On("UpdateRefreshToken", "user-1", mock.Anything).Return(nil)

	loggedIn, pair, err := uc.Login("alice", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "user-1", loggedIn.ID)
	assert.Empty(t, loggedIn.Password)
	userRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	user := &entity.User{
		ID:       "user-1",
		Username: "alice",
		Password: hashPassword(t, "password123"),
	}

	userRepo.On("GetByUsernameOrEmail", "alice", "alice").Return(user, nil)

	_, _, err := uc.Login("alice", "wrong-password")

	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	userRepo.On("GetByUsernameOrEmail", "ghost", "ghost").Return(nil, entity.ErrNotFound)

	_, _, err := uc.Login("ghost", "password123")

	// Credential failures never reveal whether the account exists.
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestRefresh_RotatesTokens(t *testing.T) {
	userRepo := new(MockUserRepository)
	jwtService := newTestJWTService()
	uc := NewAuthUseCase(userRepo, jwtService, new(MockBlobStore), logger.New())

	refreshToken, err := jwtService.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	user := &entity.User{ID: "user-1", RefreshToken: refreshToken}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	userRepo.On("UpdateRefreshToken", "user-1", mock.Anything).Return(nil)

	pair, err := uc.Refresh(refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	userRepo.AssertExpectations(t)
}

func TestRefresh_ReusedTokenRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	jwtService := newTestJWTService()
	uc := NewAuthUseCase(userRepo, jwtService, new(MockBlobStore), logger.New())

	oldToken, err := jwtService.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	// The persisted token has moved on; the presented one was already rotated.
	user := &entity.User{ID: "user-1", RefreshToken: "a-newer-token"}
	userRepo.On("GetByID", "user-1").Return(user, nil)

	_, err = uc.Refresh(oldToken)

	assert.ErrorIs(t, err, entity.ErrUnauthorized)
	userRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything)
}

func TestRefresh_AfterLogoutRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	jwtService := newTestJWTService()
	uc := NewAuthUseCase(userRepo, jwtService, new(MockBlobStore), logger.New())

	refreshToken, err := jwtService.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	user := &entity.User{ID: "user-1", RefreshToken: ""}
	userRepo.On("GetByID", "user-1").Return(user, nil)

	_, err = uc.Refresh(refreshToken)

	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestRefresh_GarbageToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	_, err := uc.Refresh("not-a-jwt")

	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestLogout_ClearsRefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	userRepo.On("UpdateRefreshToken", "user-1", "").Return(nil)

	err := uc.Logout("user-1")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	existing := &entity.User{ID: "user-1", Username: "alice"}
	userRepo.On("GetByUsernameOrEmail", "alice", "alice@test.com").Return(existing, nil)

	_, err := uc.Register(RegisterInput{
		FullName: "Alice Anders",
		Email:    "alice@test.com",
		Username: "alice",
		Password: "password123",
		Avatar:   FileInput{Reader: readerOf("img"), ContentType: "image/png"},
	})

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestRegister_CreateRaceSurfacesConflict(t *testing.T) {
	userRepo := new(MockUserRepository)
	blobStore := new(MockBlobStore)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), blobStore, logger.New())

	// A concurrent register can win between the existence check and the
	// insert; the unique index rejection must read as a conflict.
	userRepo.On("GetByUsernameOrEmail", "alice", "alice@test.com").Return(nil, entity.ErrNotFound)
	blobStore.On("UploadFile", mock.Anything, mock.Anything, "image/png").
		Return("http://blob/avatars/a.png", nil)
	userRepo.On("Create", mock.Anything).Return(entity.ErrConflict)

	_, err := uc.Register(RegisterInput{
		FullName: "Alice Anders",
		Email:    "alice@test.com",
		Username: "alice",
		Password: "password123",
		Avatar:   FileInput{Reader: readerOf("img"), ContentType: "image/png"},
	})

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestRegister_MissingAvatar(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	_, err := uc.Register(RegisterInput{
		FullName: "Alice Anders",
		Email:    "alice@test.com",
		Username: "alice",
		Password: "password123",
	})

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	blobStore := new(MockBlobStore)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), blobStore, logger.New())

	userRepo.On("GetByUsernameOrEmail", "alice", "alice@test.com").Return(nil, entity.ErrNotFound)
	blobStore.On("UploadFile", mock.Anything, mock.Anything, "image/png").
		Return("http://blob/avatars/a.png", nil)
	userRepo.On("Create", mock.Anything).Return(nil)

	user, err := uc.Register(RegisterInput{
		FullName: "Alice Anders",
		Email:    "alice@test.com",
		Username: "Alice",
		Password: "password123",
		Avatar:   FileInput{Reader: readerOf("img"), ContentType: "image/png"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "http://blob/avatars/a.png", user.AvatarURL)
	assert.Empty(t, user.Password)
	userRepo.AssertExpectations(t)
	blobStore.AssertExpectations(t)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	user := &entity.User{ID: "user-1", Password: hashPassword(t, "old-password")}
	userRepo.On("GetByID", "user-1").Return(user, nil)

	err := uc.ChangePassword("user-1", "not-the-old-password", "new-password")

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestChangePassword_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUseCase(userRepo, newTestJWTService(), new(MockBlobStore), logger.New())

	user := &entity.User{ID: "user-1", Password: hashPassword(t, "old-password")}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	userRepo.On("Update", mock.Anything).Return(nil)

	err := uc.ChangePassword("user-1", "old-password", "new-password")

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-password")))
	userRepo.AssertExpectations(t)
}
