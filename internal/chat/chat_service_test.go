package chat

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
	"minisocial/internal/session"
	"minisocial/internal/user"
)

func newTestChatService(t *testing.T) (*MockMessageRepository, *user.MockUserRepository, ChatService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	msgRepo := NewMockMessageRepository(ctrl)
	userRepo := user.NewMockUserRepository(ctrl)
	return msgRepo, userRepo, NewChatService(msgRepo, userRepo)
}

var alice = &session.Session{UserID: 1, Username: "alice"}

func TestChatService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		msgRepo, userRepo, svc := newTestChatService(t)
		userRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(&dbmysql.User{ID: 2, Username: "bob"}, nil)
		msgRepo.EXPECT().SaveMessage(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, m *dbmysql.Message) error {
				require.Equal(t, uint64(1), m.SenderID)
				require.Equal(t, uint64(2), m.ReceiverID)
				require.Equal(t, "hey bob", m.Content)
				m.ID = 5
				return nil
			})

		msg, err := svc.Send(ctx, alice, "bob", "hey bob")
		require.NoError(t, err)
		require.Equal(t, uint64(5), msg.ID)
	})

	t.Run("self message is allowed", func(t *testing.T) {
		msgRepo, userRepo, svc := newTestChatService(t)
		userRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(&dbmysql.User{ID: 1, Username: "alice"}, nil)
		msgRepo.EXPECT().SaveMessage(ctx, gomock.Any()).Return(nil)

		_, err := svc.Send(ctx, alice, "alice", "note to self")
		require.NoError(t, err)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		_, userRepo, svc := newTestChatService(t)
		userRepo.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, common.ErrNotFound)

		_, err := svc.Send(ctx, alice, "ghost", "hello?")
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("empty content", func(t *testing.T) {
		_, _, svc := newTestChatService(t)
		_, err := svc.Send(ctx, alice, "bob", "  ")
		require.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestChatService_Mailbox(t *testing.T) {
	ctx := context.Background()
	msgRepo, _, svc := newTestChatService(t)

	want := []MessageView{
		{ID: 2, Sender: "bob", Receiver: "alice", Content: "hi", CreatedAt: time.Now()},
		{ID: 1, Sender: "alice", Receiver: "bob", Content: "hey", CreatedAt: time.Now().Add(-time.Minute)},
	}
	msgRepo.EXPECT().ListMailbox(ctx, uint64(1)).Return(want, nil)

	got, err := svc.Mailbox(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestChatService_Conversation(t *testing.T) {
	ctx := context.Background()
	msgRepo, userRepo, svc := newTestChatService(t)

	userRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(&dbmysql.User{ID: 2, Username: "bob"}, nil)
	want := []MessageView{{ID: 1, Sender: "alice", Receiver: "bob", Content: "hey"}}
	msgRepo.EXPECT().ListConversation(ctx, uint64(1), uint64(2)).Return(want, nil)

	got, err := svc.Conversation(ctx, alice, "bob")
	require.NoError(t, err)
	require.Equal(t, want, got)
}
