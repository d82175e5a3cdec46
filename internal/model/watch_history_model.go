package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchHistoryModel keeps one row per (user, video); re-watching a video
// neither duplicates nor reorders the entry.
type WatchHistoryModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_user_video"`
	VideoID   string `gorm:"type:uuid;not null;uniqueIndex:idx_user_video"`
	CreatedAt time.Time

	User  UserModel  `gorm:"foreignKey:UserID"`
	Video VideoModel `gorm:"foreignKey:VideoID"`
}

func (WatchHistoryModel) TableName() string { return "watch_history" }

func (w *WatchHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
