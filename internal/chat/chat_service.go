package chat

import (
	"context"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
	"minisocial/internal/session"
	"minisocial/internal/user"
)

// ChatService defines the direct-message surface exposed to the handlers.
type ChatService interface {
	Send(ctx context.Context, sess *session.Session, toUsername, content string) (*dbmysql.Message, error)
	Mailbox(ctx context.Context, sess *session.Session) ([]MessageView, error)
	Conversation(ctx context.Context, sess *session.Session, withUsername string) ([]MessageView, error)
}

type chatService struct {
	messageRepo MessageRepository
	userRepo    user.UserRepository
}

func NewChatService(messageRepo MessageRepository, userRepo user.UserRepository) ChatService {
	return &chatService{messageRepo: messageRepo, userRepo: userRepo}
}

// Send resolves the receiver by username and saves the message. Sending to
// yourself is allowed.
func (s *chatService) Send(ctx context.Context, sess *session.Session, toUsername, content string) (*dbmysql.Message, error) {
	if err := common.ValidateRequiredContent(content); err != nil {
		return nil, err
	}

	receiver, err := s.userRepo.GetUserByUsername(ctx, toUsername)
	if err != nil {
		return nil, err
	}

	msg := &dbmysql.Message{
		SenderID:   sess.UserID,
		ReceiverID: receiver.ID,
		Content:    content,
	}
	if err := s.messageRepo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Mailbox is the global view: everything the user sent or received.
func (s *chatService) Mailbox(ctx context.Context, sess *session.Session) ([]MessageView, error) {
	return s.messageRepo.ListMailbox(ctx, sess.UserID)
}

// Conversation is the pair-scoped view with one counterpart.
func (s *chatService) Conversation(ctx context.Context, sess *session.Session, withUsername string) ([]MessageView, error) {
	other, err := s.userRepo.GetUserByUsername(ctx, withUsername)
	if err != nil {
		return nil, err
	}
	return s.messageRepo.ListConversation(ctx, sess.UserID, other.ID)
}
