package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
)

// PostView is a feed row: the post joined with its author's username and
// the like count re-derived from the store.
type PostView struct {
	ID        uint64    `json:"id"`
	AuthorID  uint64    `json:"author_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	LikeCount int64     `json:"like_count"`
}

// CommentView is a comment joined with its author's username.
type CommentView struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// --------- POSTS ---------

type Posts interface {
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	GetPostByID(ctx context.Context, id uint64) (*dbmysql.Post, error)
	ListPosts(ctx context.Context) ([]PostView, error)
	DeletePostCascade(ctx context.Context, id uint64) error
}

func (r *FeedRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: author %d", common.ErrNotFound, post.AuthorID)
	}
	return err
}

func (r *FeedRepository) GetPostByID(ctx context.Context, id uint64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: post %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns the feed newest first. created_at has second
// resolution, so posts from the same second are tie-broken by id, which is
// monotonic with insertion order.
func (r *FeedRepository) ListPosts(ctx context.Context) ([]PostView, error) {
	var rows []PostView
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.author_id, users.username AS author, posts.content, posts.image_url, posts.created_at, " +
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count").
		Joins("JOIN users ON users.id = posts.author_id").
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&rows).Error
	return rows, err
}

// DeletePostCascade removes the post and every like and comment referencing
// it in one transaction, so a failure mid-cascade leaves no orphans. An
// absent post id is a silent no-op.
func (r *FeedRepository) DeletePostCascade(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&dbmysql.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&dbmysql.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbmysql.Post{}, "id = ?", id).Error
	})
}

// --------- LIKES ---------

type Likes interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (bool, error)
	CountLikes(ctx context.Context, postID uint64) (int64, error)
}

// ToggleLike removes the like if present, otherwise inserts it, in one
// transaction. The unique (user_id, post_id) index decides races: a
// concurrent duplicate insert loses with a duplicate-key error and is
// reported as already liked rather than creating a second row.
func (r *FeedRepository) ToggleLike(ctx context.Context, userID, postID uint64) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&dbmysql.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		like := &dbmysql.Like{UserID: userID, PostID: postID}
		if err := tx.Create(like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				liked = true
				return nil
			}
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return fmt.Errorf("%w: post %d", common.ErrNotFound, postID)
			}
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *FeedRepository) CountLikes(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// --------- COMMENTS ---------

type Comments interface {
	AddComment(ctx context.Context, comment *dbmysql.Comment) error
	ListComments(ctx context.Context, postID uint64) ([]CommentView, error)
}

func (r *FeedRepository) AddComment(ctx context.Context, comment *dbmysql.Comment) error {
	err := r.db.WithContext(ctx).Create(comment).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: post %d", common.ErrNotFound, comment.PostID)
	}
	return err
}

func (r *FeedRepository) ListComments(ctx context.Context, postID uint64) ([]CommentView, error) {
	var rows []CommentView
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, users.username, comments.content, comments.created_at").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&rows).Error
	return rows, err
}
