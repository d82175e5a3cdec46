package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
	ListForVideo(videoID, viewerID string, page, limit int) (*entity.CommentPage, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Save(ToCommentModel(comment)).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.CommentModel{}).Error
}

type commentRow struct {
	ID             string
	Content        string
	CreatedAt      time.Time
	OwnerID        string
	OwnerUsername  string
	OwnerFullName  string
	OwnerAvatarURL string
	LikesCount     int64
	IsLiked        bool
}

// ListForVideo joins each comment with its owner and like aggregates, most
// recent first, id as tie-break for stable pages.
func (r *commentRepository) ListForVideo(videoID, viewerID string, page, limit int) (*entity.CommentPage, error) {
	var total int64
	err := r.db.Model(&model.CommentModel{}).
		Where("video_id = ?", videoID).
		Count(&total).Error
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var rows []commentRow
	err = r.db.Table("comments").
		Select(`comments.id, comments.content, comments.created_at,
			users.id AS owner_id, users.username AS owner_username,
			users.full_name AS owner_full_name, users.avatar_url AS owner_avatar_url,
			(SELECT count(*) FROM likes WHERE likes.comment_id = comments.id) AS likes_count,
			(SELECT count(*) > 0 FROM likes WHERE likes.comment_id = comments.id AND likes.liked_by_id = ?) AS is_liked`,
			viewerID).
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC, comments.id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]entity.CommentView, len(rows))
	for i, row := range rows {
		views[i] = entity.CommentView{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Owner: entity.OwnerInfo{
				ID:        row.OwnerID,
				Username:  row.OwnerUsername,
				FullName:  row.OwnerFullName,
				AvatarURL: row.OwnerAvatarURL,
			},
			LikesCount: row.LikesCount,
			IsLiked:    row.IsLiked,
		}
	}

	return &entity.CommentPage{
		Comments:   views,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}, nil
}
