// Package admin holds the operations gated on the admin flag: listing
// users, toggling privileges, and deleting anyone's post.
package admin

import (
	"context"
	"fmt"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
	"minisocial/internal/feed"
	"minisocial/internal/session"
	"minisocial/internal/user"
)

type AdminService interface {
	ListUsers(ctx context.Context, sess *session.Session) ([]dbmysql.User, error)
	ToggleAdmin(ctx context.Context, sess *session.Session, userID uint64) error
	DeletePost(ctx context.Context, sess *session.Session, postID uint64) error
}

type adminService struct {
	userRepo user.UserRepository
	feedSvc  feed.FeedUsecase
}

func NewAdminService(userRepo user.UserRepository, feedSvc feed.FeedUsecase) AdminService {
	return &adminService{userRepo: userRepo, feedSvc: feedSvc}
}

func requireAdmin(sess *session.Session) error {
	if sess == nil || !sess.IsAdmin {
		return fmt.Errorf("%w: admin privileges required", common.ErrForbidden)
	}
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, sess *session.Session) ([]dbmysql.User, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.userRepo.ListUsers(ctx)
}

// ToggleAdmin flips the flag; an absent user id is a silent no-op in the
// repository.
func (s *adminService) ToggleAdmin(ctx context.Context, sess *session.Session, userID uint64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	return s.userRepo.ToggleAdmin(ctx, userID)
}

// DeletePost removes any post regardless of author. Delegating to the feed
// service keeps one delete path: the admin session passes its author-or-
// admin check, and the cascade plus stored-image cleanup happen there.
func (s *adminService) DeletePost(ctx context.Context, sess *session.Session, postID uint64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	return s.feedSvc.DeletePost(ctx, sess, postID)
}
