package entity

import "time"

// Like targets exactly one of a video, a comment or a tweet.
type Like struct {
	ID        string    `json:"id"`
	LikedByID string    `json:"liked_by_id"`
	VideoID   *string   `json:"video_id,omitempty"`
	CommentID *string   `json:"comment_id,omitempty"`
	TweetID   *string   `json:"tweet_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)
