package persistent

import (
	"errors"
	"time"

	"vidtube/internal/entity"

	"gorm.io/gorm"
)

// Scan targets shared by the view queries. Column aliases in the SELECT
// clauses line up with these field names.

type videoItemRow struct {
	ID             string
	VideoURL       string
	ThumbnailURL   string
	Title          string
	Description    string
	Duration       float64
	Views          int64
	CreatedAt      time.Time
	OwnerID        string
	OwnerUsername  string
	OwnerFullName  string
	OwnerAvatarURL string
}

func (r videoItemRow) toListItem() entity.VideoListItem {
	return entity.VideoListItem{
		ID:           r.ID,
		VideoURL:     r.VideoURL,
		ThumbnailURL: r.ThumbnailURL,
		Title:        r.Title,
		Description:  r.Description,
		Duration:     r.Duration,
		Views:        r.Views,
		CreatedAt:    r.CreatedAt,
		Owner: entity.OwnerInfo{
			ID:        r.OwnerID,
			Username:  r.OwnerUsername,
			FullName:  r.OwnerFullName,
			AvatarURL: r.OwnerAvatarURL,
		},
	}
}

// videoItemColumns is the projection used wherever a video list item is
// joined with its trimmed owner.
const videoItemColumns = `videos.id, videos.video_url, videos.thumbnail_url, videos.title,
	videos.description, videos.duration, videos.views, videos.created_at,
	users.id AS owner_id, users.username AS owner_username,
	users.full_name AS owner_full_name, users.avatar_url AS owner_avatar_url`

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}

// mapConflict covers check-then-act races: a duplicate slipping past an
// existence check still hits the unique index, and the violation must
// surface as a conflict rather than an internal error.
func mapConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.ErrConflict
	}
	return err
}
