package persistent

import (
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateRefreshToken(userID, refreshToken string) error
	GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
	GetWatchHistory(userID string) ([]entity.VideoListItem, error)
	AddToWatchHistory(userID, videoID string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return mapConflict(err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.
		Where("username = ? OR email = ?", strings.ToLower(username), email).
		First(&userModel).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdateRefreshToken(userID, refreshToken string) error {
	return r.db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token", refreshToken).Error
}

// GetChannelProfile joins the target user with its subscription edges in both
// directions and computes the viewer-relative subscription flag.
func (r *userRepository) GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	var userModel model.UserModel
	err := r.db.Where("username = ?", strings.ToLower(username)).First(&userModel).Error
	if err != nil {
		return nil, mapNotFound(err)
	}

	profile := &entity.ChannelProfile{
		ID:            userModel.ID,
		Username:      userModel.Username,
		FullName:      userModel.FullName,
		Email:         userModel.Email,
		AvatarURL:     userModel.AvatarURL,
		CoverImageURL: userModel.CoverImageURL,
	}

	err = r.db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", userModel.ID).
		Count(&profile.SubscribersCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", userModel.ID).
		Count(&profile.ChannelsSubscribedToCount).Error
	if err != nil {
		return nil, err
	}

	if viewerID != "" {
		var subscribed int64
		err = r.db.Model(&model.SubscriptionModel{}).
			Where("subscriber_id = ? AND channel_id = ?", viewerID, userModel.ID).
			Count(&subscribed).Error
		if err != nil {
			return nil, err
		}
		profile.IsSubscribed = subscribed > 0
	}

	return profile, nil
}

func (r *userRepository) GetWatchHistory(userID string) ([]entity.VideoListItem, error) {
	var rows []videoItemRow
	err := r.db.Table("watch_history").
		Select(videoItemColumns).
		Joins("JOIN videos ON videos.id = watch_history.video_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("watch_history.user_id = ?", userID).
		Order("watch_history.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]entity.VideoListItem, len(rows))
	for i, row := range rows {
		items[i] = row.toListItem()
	}
	return items, nil
}

// AddToWatchHistory is a dedup append: a video already in the history keeps
// its original position.
func (r *userRepository) AddToWatchHistory(userID, videoID string) error {
	record := &model.WatchHistoryModel{
		UserID:  userID,
		VideoID: videoID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(record).Error
}
