package persistent

import (
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Exists(likedByID string, target entity.LikeTarget, targetID string) (bool, error)
	Create(likedByID string, target entity.LikeTarget, targetID string) error
	Delete(likedByID string, target entity.LikeTarget, targetID string) error
	ListLikedVideos(userID string) ([]entity.VideoListItem, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func targetColumn(target entity.LikeTarget) (string, error) {
	switch target {
	case entity.LikeTargetVideo:
		return "video_id", nil
	case entity.LikeTargetComment:
		return "comment_id", nil
	case entity.LikeTargetTweet:
		return "tweet_id", nil
	default:
		return "", fmt.Errorf("unknown like target %q: %w", target, entity.ErrInvalidInput)
	}
}

func (r *likeRepository) Exists(likedByID string, target entity.LikeTarget, targetID string) (bool, error) {
	column, err := targetColumn(target)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.Model(&model.LikeModel{}).
		Where(fmt.Sprintf("liked_by_id = ? AND %s = ?", column), likedByID, targetID).
		Count(&count).Error
	return count > 0, err
}

// Create relies on the unique pair index per target kind; a concurrent
// duplicate insert is absorbed as "already present".
func (r *likeRepository) Create(likedByID string, target entity.LikeTarget, targetID string) error {
	like := &model.LikeModel{LikedByID: likedByID}
	switch target {
	case entity.LikeTargetVideo:
		like.VideoID = &targetID
	case entity.LikeTargetComment:
		like.CommentID = &targetID
	case entity.LikeTargetTweet:
		like.TweetID = &targetID
	default:
		return fmt.Errorf("unknown like target %q: %w", target, entity.ErrInvalidInput)
	}

	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

func (r *likeRepository) Delete(likedByID string, target entity.LikeTarget, targetID string) error {
	column, err := targetColumn(target)
	if err != nil {
		return err
	}

	return r.db.
		Where(fmt.Sprintf("liked_by_id = ? AND %s = ?", column), likedByID, targetID).
		Delete(&model.LikeModel{}).Error
}

func (r *likeRepository) ListLikedVideos(userID string) ([]entity.VideoListItem, error) {
	var rows []videoItemRow
	err := r.db.Table("likes").
		Select(videoItemColumns).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("likes.liked_by_id = ? AND videos.is_published = ?", userID, true).
		Order("likes.created_at DESC").
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
