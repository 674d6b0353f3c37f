package feed

import (
	"context"
	"fmt"
	"log"
	"path"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
	"minisocial/internal/session"
)

// FeedUsecase is the surface the HTTP handlers consume.
type FeedUsecase interface {
	CreatePost(ctx context.Context, sess *session.Session, content string, image []byte, imageName, mimeType string) (*CreatePostResult, error)
	ListFeed(ctx context.Context) ([]PostView, error)
	ToggleLike(ctx context.Context, sess *session.Session, postID uint64) (bool, int64, error)
	AddComment(ctx context.Context, sess *session.Session, postID uint64, content string) error
	ListComments(ctx context.Context, postID uint64) ([]CommentView, error)
	DeletePost(ctx context.Context, sess *session.Session, postID uint64) error
}

// CreatePostResult reports the created post and, when the image upload
// failed, why the post ended up without one.
type CreatePostResult struct {
	PostID      uint64  `json:"post_id"`
	ImageURL    *string `json:"image_url"`
	UploadError string  `json:"upload_error,omitempty"`
}

type FeedService struct {
	postRepo    Posts
	likeRepo    Likes
	commentRepo Comments
	blobs       common.BlobStore
}

func NewFeedService(p Posts, l Likes, c Comments, b common.BlobStore) *FeedService {
	return &FeedService{postRepo: p, likeRepo: l, commentRepo: c, blobs: b}
}

// CreatePost uploads the image first (when one is supplied) and then
// creates the post. A failed upload degrades the post: it is created
// without an image and the failure is reported back, never fatal.
func (s *FeedService) CreatePost(ctx context.Context, sess *session.Session, content string, image []byte, imageName, mimeType string) (*CreatePostResult, error) {
	if err := common.ValidatePostContent(content); err != nil {
		return nil, err
	}

	result := &CreatePostResult{}
	var imageURL *string
	if len(image) > 0 {
		url, err := s.blobs.Upload(ctx, imageName, mimeType, image)
		if err != nil {
			log.Printf("image upload failed, creating post without image: %v", err)
			result.UploadError = fmt.Errorf("%w: %v", common.ErrUpload, err).Error()
		} else {
			imageURL = &url
		}
	}

	post := &dbmysql.Post{
		AuthorID: sess.UserID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	result.PostID = post.ID
	result.ImageURL = imageURL
	return result, nil
}

func (s *FeedService) ListFeed(ctx context.Context) ([]PostView, error) {
	return s.postRepo.ListPosts(ctx)
}

// ToggleLike flips the like state and returns the count re-derived from the
// store, so concurrent likers never see a locally incremented number.
func (s *FeedService) ToggleLike(ctx context.Context, sess *session.Session, postID uint64) (bool, int64, error) {
	liked, err := s.likeRepo.ToggleLike(ctx, sess.UserID, postID)
	if err != nil {
		return false, 0, err
	}
	count, err := s.likeRepo.CountLikes(ctx, postID)
	if err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

func (s *FeedService) AddComment(ctx context.Context, sess *session.Session, postID uint64, content string) error {
	if err := common.ValidateRequiredContent(content); err != nil {
		return err
	}
	comment := &dbmysql.Comment{
		UserID:  sess.UserID,
		PostID:  postID,
		Content: content,
	}
	return s.commentRepo.AddComment(ctx, comment)
}

func (s *FeedService) ListComments(ctx context.Context, postID uint64) ([]CommentView, error) {
	return s.commentRepo.ListComments(ctx, postID)
}

// DeletePost is allowed for the post's author and for admins; everyone else
// gets ErrForbidden. The cascade itself is one transaction in the
// repository. A stored image is removed afterwards, best effort: a failed
// blob delete leaves an orphan in storage but never resurrects the post.
func (s *FeedService) DeletePost(ctx context.Context, sess *session.Session, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != sess.UserID && !sess.IsAdmin {
		return fmt.Errorf("%w: only the author or an admin can delete a post", common.ErrForbidden)
	}
	if err := s.postRepo.DeletePostCascade(ctx, postID); err != nil {
		return err
	}

	if post.ImageURL != nil {
		fileID := path.Base(*post.ImageURL)
		if err := s.blobs.Delete(ctx, fileID); err != nil {
			log.Printf("image %s orphaned after deleting post %d: %v", fileID, postID, err)
		}
	}
	return nil
}
