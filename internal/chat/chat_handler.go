package chat

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"minisocial/internal/common"
	"minisocial/internal/session"
)

type ChatHandler struct {
	chatService ChatService
}

func NewChatHandler(chatService ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type sendRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.ErrValidation)
		return
	}

	msg, err := h.chatService.Send(r.Context(), sess, req.To, req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) Mailbox(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	messages, err := h.chatService.Mailbox(r.Context(), sess)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if messages == nil {
		messages = []MessageView{}
	}
	common.WriteJSON(w, http.StatusOK, messages)
}

func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	withUsername := mux.Vars(r)["username"]
	messages, err := h.chatService.Conversation(r.Context(), sess, withUsername)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if messages == nil {
		messages = []MessageView{}
	}
	common.WriteJSON(w, http.StatusOK, messages)
}
