package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *entity.Tweet) error
	GetByID(id string) (*entity.Tweet, error)
	Update(tweet *entity.Tweet) error
	Delete(id string) error
	ListForUser(userID, viewerID string) ([]entity.TweetView, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *entity.Tweet) error {
	tweetModel := ToTweetModel(tweet)
	if err := r.db.Create(tweetModel).Error; err != nil {
		return err
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(id string) (*entity.Tweet, error) {
	var tweetModel model.TweetModel
	if err := r.db.Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) Update(tweet *entity.Tweet) error {
	return r.db.Save(ToTweetModel(tweet)).Error
}

func (r *tweetRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.TweetModel{}).Error
}

type tweetRow struct {
	ID             string
	Content        string
	CreatedAt      time.Time
	OwnerID        string
	OwnerUsername  string
	OwnerFullName  string
	OwnerAvatarURL string
	LikesCount     int64
	IsLiked        bool
}

func (r *tweetRepository) ListForUser(userID, viewerID string) ([]entity.TweetView, error) {
	var rows []tweetRow
	err := r.db.Table("tweets").
		Select(`tweets.id, tweets.content, tweets.created_at,
			users.id AS owner_id, users.username AS owner_username,
			users.full_name AS owner_full_name, users.avatar_url AS owner_avatar_url,
			(SELECT count(*) FROM likes WHERE likes.tweet_id = tweets.id) AS likes_count,
			(SELECT count(*) > 0 FROM likes WHERE likes.tweet_id = tweets.id AND likes.liked_by_id = ?) AS is_liked`,
			viewerID).
		Joins("JOIN users ON users.id = tweets.owner_id").
		Where("tweets.owner_id = ?", userID).
		Order("tweets.created_at DESC, tweets.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]entity.TweetView, len(rows))
	for i, row := range rows {
		views[i] = entity.TweetView{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Owner: entity.OwnerInfo{
				ID:        row.OwnerID,
				Username:  row.OwnerUsername,
				FullName:  row.OwnerFullName,
				AvatarURL: row.OwnerAvatarURL,
			},
			LikesCount: row.LikesCount,
			IsLiked:    row.IsLiked,
		}
	}
	return views, nil
}
