package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/quillpad-dev/quillpad/internal/domain"
	"github.com/quillpad-dev/quillpad/internal/gravatar"
	"github.com/quillpad-dev/quillpad/internal/logger"
	"github.com/quillpad-dev/quillpad/internal/middleware"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

// CommonTemplateData holds fields every page template can use.
type CommonTemplateData struct {
	Flash string
	User  *domain.User
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateStatus(w, r, name, data, http.StatusOK)
}

func (h *Handler) renderTemplateStatus(w http.ResponseWriter, r *http.Request, name string, data any, status int) {
	tmpl, ok := h.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data: data,
		Common: CommonTemplateData{
			Flash: h.popFlash(w, r),
			User:  middleware.UserFromContext(r),
		},
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "layout", wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// PostView is a BlogPost prepared for display.
type PostView struct {
	domain.BlogPost
	Date     string
	BodyHTML template.HTML
}

// CommentView is a Comment prepared for display, avatar included.
type CommentView struct {
	domain.Comment
	AvatarURL string
}

const displayDate = "January 2, 2006"

func (h *Handler) renderPost(post domain.BlogPost) PostView {
	return PostView{
		BlogPost: post,
		Date:     post.CreatedAt.Format(displayDate),
		BodyHTML: h.markdown.Render(post.Body),
	}
}

func (h *Handler) renderPosts(posts []domain.BlogPost) []PostView {
	views := make([]PostView, len(posts))
	for i, post := range posts {
		views[i] = h.renderPost(post)
	}
	return views
}

// renderComments resolves each commenter's avatar from the email joined at
// read time; removed accounts get the placeholder hash of the empty string.
func renderComments(comments []domain.Comment) []CommentView {
	views := make([]CommentView, len(comments))
	for i, comment := range comments {
		views[i] = CommentView{
			Comment:   comment,
			AvatarURL: gravatar.URL(comment.AuthorEmail),
		}
	}
	return views
}
