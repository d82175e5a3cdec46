package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionModel rows exist or they don't; the unique pair index is the
// store-level guarantee behind the toggle protocol.
type SubscriptionModel struct {
	ID           string `gorm:"type:uuid;primary_key"`
	SubscriberID string `gorm:"type:uuid;not null;uniqueIndex:idx_subscriber_channel"`
	ChannelID    string `gorm:"type:uuid;not null;uniqueIndex:idx_subscriber_channel;index"`
	CreatedAt    time.Time

	Subscriber UserModel `gorm:"foreignKey:SubscriberID"`
	Channel    UserModel `gorm:"foreignKey:ChannelID"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
