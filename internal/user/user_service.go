package user

import (
	"context"
	"fmt"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
	"minisocial/internal/session"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*dbmysql.User, error)
	Login(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	Logout(ctx context.Context, token string)
}

type userService struct {
	userRepo UserRepository
	sessions *session.Manager
}

func NewUserService(userRepo UserRepository, sessions *session.Manager) UserService {
	return &userService{userRepo: userRepo, sessions: sessions}
}

// Register creates a new non-admin account. Duplicate usernames surface as
// common.ErrAlreadyExists from the repository's atomic insert.
func (s *userService) Register(ctx context.Context, username, password string) (*dbmysql.User, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &dbmysql.User{
		Username:     username,
		PasswordHash: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a session token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password required", common.ErrValidation)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid username or password", common.ErrUnauthenticated)
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", fmt.Errorf("%w: invalid username or password", common.ErrUnauthenticated)
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes the token; the session returns to anonymous.
func (s *userService) Logout(ctx context.Context, token string) {
	s.sessions.Revoke(token)
}
