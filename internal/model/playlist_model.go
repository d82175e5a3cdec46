package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	OwnerID     string `gorm:"type:uuid;not null;index"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner UserModel `gorm:"foreignKey:OwnerID"`
}

func (PlaylistModel) TableName() string { return "playlists" }

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideoModel is the membership join table. The unique pair index
// gives playlist members set semantics.
type PlaylistVideoModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	PlaylistID string `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_video"`
	VideoID    string `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_video;index"`
	CreatedAt  time.Time

	Playlist PlaylistModel `gorm:"foreignKey:PlaylistID"`
	Video    VideoModel    `gorm:"foreignKey:VideoID"`
}

func (PlaylistVideoModel) TableName() string { return "playlist_videos" }

func (pv *PlaylistVideoModel) BeforeCreate(tx *gorm.DB) error {
	if pv.ID == "" {
		pv.ID = uuid.New().String()
	}
	return nil
}
