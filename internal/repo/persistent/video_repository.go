package persistent

import (
	"fmt"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	Update(video *entity.Video) error
	Delete(id string) error
	List(params entity.VideoListParams) (*entity.VideoPage, error)
	GetDetail(videoID, viewerID string) (*entity.VideoDetail, error)
	IncrementViews(videoID string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	return r.db.Save(ToVideoModel(video)).Error
}

// Delete removes the row; playlist membership, likes, comments and watch
// history rows go with it through the FK cascades in the schema.
func (r *videoRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.VideoModel{}).Error
}

// sortColumns whitelists the fields the feed can be ordered by.
var sortColumns = map[string]string{
	"created_at": "videos.created_at",
	"views":      "videos.views",
	"duration":   "videos.duration",
	"title":      "videos.title",
}

// List is the published-video feed: optional case-insensitive text search
// over title/description, optional owner filter, whitelisted sort with an id
// tie-break so pages stay stable under concurrent inserts.
func (r *videoRepository) List(params entity.VideoListParams) (*entity.VideoPage, error) {
	query := r.db.Table("videos").Where("videos.is_published = ?", true)

	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		query = query.Where("(videos.title ILIKE ? OR videos.description ILIKE ?)", pattern, pattern)
	}

	if params.OwnerID != "" {
		query = query.Where("videos.owner_id = ?", params.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	sortColumn, ok := sortColumns[params.SortBy]
	if !ok {
		sortColumn = "videos.created_at"
	}
	direction := "DESC"
	if params.SortOrder == "asc" {
		direction = "ASC"
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}

	var rows []videoItemRow
	err := query.
		Select(videoItemColumns).
		Joins("JOIN users ON users.id = videos.owner_id").
		Order(fmt.Sprintf("%s %s, videos.id %s", sortColumn, direction, direction)).
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]entity.VideoListItem, len(rows))
	for i, row := range rows {
		items[i] = row.toListItem()
	}

	return &entity.VideoPage{
		Videos:     items,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}, nil
}

// GetDetail joins the video with its likes and with the owner enriched by
// channel aggregates, all computed at read time.
func (r *videoRepository) GetDetail(videoID, viewerID string) (*entity.VideoDetail, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", videoID).First(&videoModel).Error; err != nil {
		return nil, mapNotFound(err)
	}

	var ownerModel model.UserModel
	if err := r.db.Where("id = ?", videoModel.OwnerID).First(&ownerModel).Error; err != nil {
		return nil, mapNotFound(err)
	}

	detail := &entity.VideoDetail{
		ID:           videoModel.ID,
		VideoURL:     videoModel.VideoURL,
		ThumbnailURL: videoModel.ThumbnailURL,
		Title:        videoModel.Title,
		Description:  videoModel.Description,
		Duration:     videoModel.Duration,
		Views:        videoModel.Views,
		CreatedAt:    videoModel.CreatedAt,
		Owner: entity.VideoOwner{
			OwnerInfo: entity.OwnerInfo{
				ID:        ownerModel.ID,
				Username:  ownerModel.Username,
				FullName:  ownerModel.FullName,
				AvatarURL: ownerModel.AvatarURL,
			},
		},
	}

	err := r.db.Model(&model.LikeModel{}).
		Where("video_id = ?", videoID).
		Count(&detail.LikesCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", ownerModel.ID).
		Count(&detail.Owner.SubscribersCount).Error
	if err != nil {
		return nil, err
	}

	if viewerID != "" {
		var liked int64
		err = r.db.Model(&model.LikeModel{}).
			Where("video_id = ? AND liked_by_id = ?", videoID, viewerID).
			Count(&liked).Error
		if err != nil {
			return nil, err
		}
		detail.IsLiked = liked > 0

		var subscribed int64
		err = r.db.Model(&model.SubscriptionModel{}).
			Where("subscriber_id = ? AND channel_id = ?", viewerID, ownerModel.ID).
			Count(&subscribed).Error
		if err != nil {
			return nil, err
		}
		detail.Owner.IsSubscribed = subscribed > 0
	}

	return detail, nil
}

// IncrementViews bumps the persisted counter in the store so concurrent
// fetches never lose updates.
func (r *videoRepository) IncrementViews(videoID string) error {
	return r.db.Model(&model.VideoModel{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
