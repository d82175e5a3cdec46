package entity

import "time"

// Read-model projections built on demand by the repositories. None of these
// are persisted; every count is computed from the authoritative tables at
// read time (Video.Views is the single persisted counter).

// OwnerInfo is the trimmed owner projection attached to list items.
type OwnerInfo struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// ChannelProfile is the public channel page for a username, relative to an
// optional viewer.
type ChannelProfile struct {
	ID                        string `json:"id"`
	Username                  string `json:"username"`
	FullName                  string `json:"full_name"`
	Email                     string `json:"email"`
	AvatarURL                 string `json:"avatar_url"`
	CoverImageURL             string `json:"cover_image_url"`
	SubscribersCount          int64  `json:"subscribers_count"`
	ChannelsSubscribedToCount int64  `json:"channels_subscribed_to_count"`
	IsSubscribed              bool   `json:"is_subscribed"`
}

// VideoOwner enriches the owner of a video detail with channel aggregates.
type VideoOwner struct {
	OwnerInfo
	SubscribersCount int64 `json:"subscribers_count"`
	IsSubscribed     bool  `json:"is_subscribed"`
}

type VideoDetail struct {
	ID           string     `json:"id"`
	VideoURL     string     `json:"video_url"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Duration     float64    `json:"duration"`
	Views        int64      `json:"views"`
	CreatedAt    time.Time  `json:"created_at"`
	Owner        VideoOwner `json:"owner"`
	LikesCount   int64      `json:"likes_count"`
	IsLiked      bool       `json:"is_liked"`
}

type VideoListItem struct {
	ID           string    `json:"id"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	Owner        OwnerInfo `json:"owner"`
}

type VideoPage struct {
	Videos     []VideoListItem `json:"videos"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalCount int64           `json:"total_count"`
}

type CommentView struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Owner      OwnerInfo `json:"owner"`
	LikesCount int64     `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
}

type CommentPage struct {
	Comments   []CommentView `json:"comments"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalCount int64         `json:"total_count"`
}

type TweetView struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Owner      OwnerInfo `json:"owner"`
	LikesCount int64     `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
}

// PlaylistSummary lists a playlist with aggregates over its published members.
type PlaylistSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalVideos int64     `json:"total_videos"`
	TotalViews  int64     `json:"total_views"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PlaylistDetail struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	TotalVideos int64           `json:"total_videos"`
	TotalViews  int64           `json:"total_views"`
	Videos      []VideoListItem `json:"videos"`
	Owner       OwnerInfo       `json:"owner"`
}

// ChannelSubscriber is one entry of a channel's subscriber list.
type ChannelSubscriber struct {
	Subscriber       OwnerInfo `json:"subscriber"`
	SubscribersCount int64     `json:"subscribers_count"`
	SubscribedBack   bool      `json:"subscribed_back"`
}

// SubscribedChannel is one entry of a user's subscription list.
type SubscribedChannel struct {
	Channel     OwnerInfo      `json:"channel"`
	LatestVideo *VideoListItem `json:"latest_video,omitempty"`
}
