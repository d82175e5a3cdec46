package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel targets exactly one of video/comment/tweet. One unique pair
// index per target kind backs the toggle protocol; NULL target columns do
// not participate in the other kinds' indexes.
type LikeModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	LikedByID string  `gorm:"type:uuid;not null;uniqueIndex:idx_like_video;uniqueIndex:idx_like_comment;uniqueIndex:idx_like_tweet"`
	VideoID   *string `gorm:"type:uuid;uniqueIndex:idx_like_video;index"`
	CommentID *string `gorm:"type:uuid;uniqueIndex:idx_like_comment;index"`
	TweetID   *string `gorm:"type:uuid;uniqueIndex:idx_like_tweet;index"`
	CreatedAt time.Time

	LikedBy UserModel `gorm:"foreignKey:LikedByID"`
}

func (LikeModel) TableName() string { return "likes" }

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
