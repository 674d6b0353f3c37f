package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
)

// MessageView is a message joined with both usernames for display.
type MessageView struct {
	ID        uint64    `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageRepository interface {
	SaveMessage(ctx context.Context, msg *dbmysql.Message) error
	ListMailbox(ctx context.Context, userID uint64) ([]MessageView, error)
	ListConversation(ctx context.Context, userID, otherID uint64) ([]MessageView, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) SaveMessage(ctx context.Context, msg *dbmysql.Message) error {
	err := r.db.WithContext(ctx).Create(msg).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: sender or receiver", common.ErrNotFound)
	}
	return err
}

const messageSelect = "messages.id, s.username AS sender, r.username AS receiver, messages.content, messages.created_at"

// ListMailbox returns every message the user sent or received, newest
// first. Messages between two other users are never included.
func (r *messageRepository) ListMailbox(ctx context.Context, userID uint64) ([]MessageView, error) {
	var rows []MessageView
	err := r.db.WithContext(ctx).
		Table("messages").
		Select(messageSelect).
		Joins("JOIN users s ON s.id = messages.sender_id").
		Joins("JOIN users r ON r.id = messages.receiver_id").
		Where("messages.sender_id = ? OR messages.receiver_id = ?", userID, userID).
		Order("messages.created_at DESC, messages.id DESC").
		Scan(&rows).Error
	return rows, err
}

// ListConversation returns the history between exactly the pair, in either
// direction, newest first.
func (r *messageRepository) ListConversation(ctx context.Context, userID, otherID uint64) ([]MessageView, error) {
	var rows []MessageView
	err := r.db.WithContext(ctx).
		Table("messages").
		Select(messageSelect).
		Joins("JOIN users s ON s.id = messages.sender_id").
		Joins("JOIN users r ON r.id = messages.receiver_id").
		Where("(messages.sender_id = ? AND messages.receiver_id = ?) OR (messages.sender_id = ? AND messages.receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("messages.created_at DESC, messages.id DESC").
		Scan(&rows).Error
	return rows, err
}
