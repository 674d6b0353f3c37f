package feed

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"minisocial/internal/common"
	"minisocial/internal/session"
)

// maxUploadBytes caps multipart memory for post images.
const maxUploadBytes = 10 << 20

type FeedHandlers struct {
	FeedSvc FeedUsecase
}

func NewFeedHandlers(svc FeedUsecase) *FeedHandlers {
	return &FeedHandlers{FeedSvc: svc}
}

// CreatePost accepts multipart form data: a required "content" field and an
// optional "image" file.
func (h *FeedHandlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.WriteError(w, common.ErrValidation)
		return
	}
	content := r.FormValue("content")

	var imageData []byte
	var imageName, mimeType string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageData, err = io.ReadAll(file)
		if err != nil {
			common.WriteError(w, err)
			return
		}
		imageName = header.Filename
		mimeType = header.Header.Get("Content-Type")
	}

	result, err := h.FeedSvc.CreatePost(r.Context(), sess, content, imageData, imageName, mimeType)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, result)
}

func (h *FeedHandlers) ListFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.FeedSvc.ListFeed(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if posts == nil {
		posts = []PostView{}
	}
	common.WriteJSON(w, http.StatusOK, posts)
}

type likeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

func (h *FeedHandlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}
	postID, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, common.ErrValidation)
		return
	}

	liked, count, err := h.FeedSvc.ToggleLike(r.Context(), sess, postID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, likeResponse{Liked: liked, LikeCount: count})
}

type commentRequest struct {
	Content string `json:"content"`
}

func (h *FeedHandlers) AddComment(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}
	postID, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, common.ErrValidation)
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.ErrValidation)
		return
	}
	if err := h.FeedSvc.AddComment(r.Context(), sess, postID, req.Content); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FeedHandlers) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, common.ErrValidation)
		return
	}
	comments, err := h.FeedSvc.ListComments(r.Context(), postID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if comments == nil {
		comments = []CommentView{}
	}
	common.WriteJSON(w, http.StatusOK, comments)
}

func (h *FeedHandlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthenticated)
		return
	}
	postID, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, common.ErrValidation)
		return
	}
	if err := h.FeedSvc.DeletePost(r.Context(), sess, postID); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}
