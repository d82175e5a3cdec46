package persistent

import (
	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	Exists(subscriberID, channelID string) (bool, error)
	Create(subscriberID, channelID string) error
	Delete(subscriberID, channelID string) error
	ListChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error)
	ListSubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Exists(subscriberID, channelID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// Create relies on the unique pair index: a concurrent duplicate insert is
// absorbed, not surfaced as an error.
func (r *subscriptionRepository) Create(subscriberID, channelID string) error {
	subscription := &model.SubscriptionModel{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(subscription).Error
}

func (r *subscriptionRepository) Delete(subscriberID, channelID string) error {
	return r.db.
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{}).Error
}

type channelSubscriberRow struct {
	ID               string
	Username         string
	FullName         string
	AvatarURL        string
	SubscribersCount int64
	SubscribedBack   bool
}

// ListChannelSubscribers returns the channel's subscribers, each with its
// own subscriber count and a flag for whether the channel subscribes back.
func (r *subscriptionRepository) ListChannelSubscribers(channelID string) ([]entity.ChannelSubscriber, error) {
	var rows []channelSubscriberRow
	err := r.db.Table("subscriptions").
		Select(`users.id, users.username, users.full_name, users.avatar_url,
			(SELECT count(*) FROM subscriptions s2 WHERE s2.channel_id = users.id) AS subscribers_count,
			(SELECT count(*) > 0 FROM subscriptions s3
				WHERE s3.subscriber_id = ? AND s3.channel_id = users.id) AS subscribed_back`,
			channelID).
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	subscribers := make([]entity.ChannelSubscriber, len(rows))
	for i, row := range rows {
		subscribers[i] = entity.ChannelSubscriber{
			Subscriber: entity.OwnerInfo{
				ID:        row.ID,
				Username:  row.Username,
				FullName:  row.FullName,
				AvatarURL: row.AvatarURL,
			},
			SubscribersCount: row.SubscribersCount,
			SubscribedBack:   row.SubscribedBack,
		}
	}
	return subscribers, nil
}

// ListSubscribedChannels joins each subscribed channel with its latest
// published video.
func (r *subscriptionRepository) ListSubscribedChannels(subscriberID string) ([]entity.SubscribedChannel, error) {
	var channelRows []struct {
		ID        string
		Username  string
		FullName  string
		AvatarURL string
	}
	err := r.db.Table("subscriptions").
		Select("users.id, users.username, users.full_name, users.avatar_url").
		Joins("JOIN users ON users.id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Scan(&channelRows).Error
	if err != nil {
		return nil, err
	}

	channels := make([]entity.SubscribedChannel, len(channelRows))
	channelIDs := make([]string, len(channelRows))
	for i, row := range channelRows {
		channelIDs[i] = row.ID
		channels[i] = entity.SubscribedChannel{
			Channel: entity.OwnerInfo{
				ID:        row.ID,
				Username:  row.Username,
				FullName:  row.FullName,
				AvatarURL: row.AvatarURL,
			},
		}
	}

	if len(channelIDs) == 0 {
		return channels, nil
	}

	var latestRows []videoItemRow
	err = r.db.Table("videos").
		Select("DISTINCT ON (videos.owner_id) " + videoItemColumns).
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("videos.owner_id IN ? AND videos.is_published = ?", channelIDs, true).
		Order("videos.owner_id, videos.created_at DESC").
		Scan(&latestRows).Error
	if err != nil {
		return nil, err
	}

	latestByOwner := make(map[string]entity.VideoListItem, len(latestRows))
	for _, row := range latestRows {
		latestByOwner[row.OwnerID] = row.toListItem()
	}

	for i := range channels {
		if latest, ok := latestByOwner[channels[i].Channel.ID]; ok {
			item := latest
			channels[i].LatestVideo = &item
		}
	}

	return channels, nil
}
