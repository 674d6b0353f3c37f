package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	ListUsers(ctx context.Context) ([]dbmysql.User, error)
	ToggleAdmin(ctx context.Context, userID uint64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser is a single atomic insert; the unique index on username is the
// duplicate check, so two concurrent registrations of the same name can
// never both succeed.
func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: username %q is taken", common.ErrAlreadyExists, user.Username)
	}
	return err
}

// GetUserByUsername matches case-sensitively and exactly.
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("BINARY username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %q", common.ErrNotFound, username)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]dbmysql.User, error) {
	var users []dbmysql.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

// ToggleAdmin flips the flag in one statement. An absent user id matches no
// rows and the call is a silent no-op.
func (r *userRepository) ToggleAdmin(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("id = ?", userID).
		UpdateColumn("is_admin", gorm.Expr("NOT is_admin")).Error
}
