package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	Update(playlist *entity.Playlist) error
	Delete(id string) error
	ListForUser(userID string) ([]entity.PlaylistSummary, error)
	GetDetail(playlistID string) (*entity.PlaylistDetail, error)
	AddVideo(playlistID, videoID string) error
	RemoveVideo(playlistID, videoID string) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Where("id = ?", id).First(&playlistModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	return r.db.Save(ToPlaylistModel(playlist)).Error
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.PlaylistModel{}).Error
}

type playlistSummaryRow struct {
	ID          string
	Name        string
	Description string
	UpdatedAt   time.Time
	TotalVideos int64
	TotalViews  int64
}

// ListForUser computes member aggregates over published videos only;
// unpublished members are invisible to both counts.
func (r *playlistRepository) ListForUser(userID string) ([]entity.PlaylistSummary, error) {
	var rows []playlistSummaryRow
	err := r.db.Table("playlists").
		Select(`playlists.id, playlists.name, playlists.description, playlists.updated_at,
			(SELECT count(*) FROM playlist_videos pv
				JOIN videos v ON v.id = pv.video_id AND v.is_published
				WHERE pv.playlist_id = playlists.id) AS total_videos,
			(SELECT coalesce(sum(v.views), 0) FROM playlist_videos pv
				JOIN videos v ON v.id = pv.video_id AND v.is_published
				WHERE pv.playlist_id = playlists.id) AS total_views`).
		Where("playlists.owner_id = ?", userID).
		Order("playlists.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.PlaylistSummary, len(rows))
	for i, row := range rows {
		summaries[i] = entity.PlaylistSummary{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			TotalVideos: row.TotalVideos,
			TotalViews:  row.TotalViews,
			UpdatedAt:   row.UpdatedAt,
		}
	}
	return summaries, nil
}

// GetDetail joins the playlist with its published member videos and the
// owner projection; totals come from the surviving members.
func (r *playlistRepository) GetDetail(playlistID string) (*entity.PlaylistDetail, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Where("id = ?", playlistID).First(&playlistModel).Error; err != nil {
		return nil, mapNotFound(err)
	}

	var ownerModel model.UserModel
	if err := r.db.Where("id = ?", playlistModel.OwnerID).First(&ownerModel).Error; err != nil {
		return nil, mapNotFound(err)
	}

	var rows []videoItemRow
	err := r.db.Table("playlist_videos").
		Select(videoItemColumns).
		Joins("JOIN videos ON videos.id = playlist_videos.video_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("playlist_videos.playlist_id = ? AND videos.is_published = ?", playlistID, true).
		Order("playlist_videos.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	detail := &entity.PlaylistDetail{
		ID:          playlistModel.ID,
		Name:        playlistModel.Name,
		Description: playlistModel.Description,
		CreatedAt:   playlistModel.CreatedAt,
		UpdatedAt:   playlistModel.UpdatedAt,
		Videos:      make([]entity.VideoListItem, len(rows)),
		Owner: entity.OwnerInfo{
			ID:        ownerModel.ID,
			Username:  ownerModel.Username,
			FullName:  ownerModel.FullName,
			AvatarURL: ownerModel.AvatarURL,
		},
	}

	for i, row := range rows {
		detail.Videos[i] = row.toListItem()
		detail.TotalViews += row.Views
	}
	detail.TotalVideos = int64(len(rows))

	return detail, nil
}

// AddVideo is a set insert: adding a member twice is a no-op.
func (r *playlistRepository) AddVideo(playlistID, videoID string) error {
	member := &model.PlaylistVideoModel{
		PlaylistID: playlistID,
		VideoID:    videoID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) error {
	return r.db.
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{}).Error
}
