package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quillpad-dev/quillpad/internal/domain"
	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
	"github.com/quillpad-dev/quillpad/internal/logger"
	"github.com/quillpad-dev/quillpad/internal/middleware"
	"github.com/quillpad-dev/quillpad/internal/web"
)

type postForm struct {
	Title    string `validate:"required,max=250"`
	Subtitle string `validate:"required,max=250"`
	ImgUrl   string `validate:"required,url"`
	Body     string `validate:"required"`
}

func postFormFromRequest(r *http.Request) postForm {
	return postForm{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImgUrl:   r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
}

func (f postForm) draft() domain.PostDraft {
	return domain.PostDraft{Title: f.Title, Subtitle: f.Subtitle, ImgUrl: f.ImgUrl, Body: f.Body}
}

// Index lists every post in creation order.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.All()
	if err != nil {
		logger.Log.Error("failed to list posts", "error", err)
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	h.renderTemplate(w, r, "index", h.renderPosts(posts))
}

// ShowPost renders a single post with its comments.
func (h *Handler) ShowPost(w http.ResponseWriter, r *http.Request) {
	id, err := web.ParseId(chi.URLParam(r, "id"))
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	h.showPost(w, r, id)
}

func (h *Handler) showPost(w http.ResponseWriter, r *http.Request, id int64) {
	post, err := h.posts.Get(id)
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	comments, err := h.comments.ForPost(id)
	if err != nil {
		logger.Log.Error("failed to list comments", "post", id, "error", err)
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	var data struct {
		Post     PostView
		Comments []CommentView
	}
	data.Post = h.renderPost(post)
	data.Comments = renderComments(comments)
	h.renderTemplate(w, r, "post", data)
}

// CreateComment handles the comment form on a post page. Only authenticated
// users may comment; the comment is attributed with the user's display name
// as it is at submission time.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := web.ParseId(chi.URLParam(r, "id"))
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	user := middleware.UserFromContext(r)
	if user == nil {
		h.redirectWithFlash(w, r, "/login", "You need to login or register to comment!")
		return
	}

	// Stored as typed; html/template escapes at render, so pre-escaping here
	// would corrupt the text and make the round-trip lossy.
	if _, err := h.comments.Create(*user, r.FormValue("text"), id); err != nil {
		if internal_errors.IsNotFound(err) {
			web.WriteErrorAndStatusCode(w, err)
			return
		}
		h.redirectWithFlash(w, r, postURL(id), err.Error())
		return
	}

	http.Redirect(w, r, postURL(id), http.StatusSeeOther)
}

func (h *Handler) NewPostGet(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "make-post", makePostData{Heading: "New Post", Action: "/new-post"})
}

func (h *Handler) NewPostPost(w http.ResponseWriter, r *http.Request) {
	form := postFormFromRequest(r)
	if err := web.ValidateStruct(form); err != nil {
		h.redirectWithFlash(w, r, "/new-post", err.Error())
		return
	}

	user := middleware.UserFromContext(r)
	post, err := h.posts.Create(form.draft(), *user)
	if err != nil {
		if internal_errors.IsConflict(err) {
			h.redirectWithFlash(w, r, "/new-post", err.Error())
			return
		}
		logger.Log.Error("failed to create post", "error", err)
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	logger.Log.Info("post created", "post", post.Id, "title", post.Title)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// makePostData parameterizes the shared new/edit form template.
type makePostData struct {
	Heading string
	Action  string
	Form    postForm
}

// EditPostGet pre-populates the form from the existing post.
func (h *Handler) EditPostGet(w http.ResponseWriter, r *http.Request) {
	id, err := web.ParseId(chi.URLParam(r, "id"))
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}
	post, err := h.posts.Get(id)
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	h.renderTemplate(w, r, "make-post", makePostData{
		Heading: "Edit Post",
		Action:  editURL(id),
		Form: postForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImgUrl:   post.ImgUrl,
			Body:     post.Body,
		},
	})
}

func (h *Handler) EditPostPost(w http.ResponseWriter, r *http.Request) {
	id, err := web.ParseId(chi.URLParam(r, "id"))
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	form := postFormFromRequest(r)
	if err := web.ValidateStruct(form); err != nil {
		h.redirectWithFlash(w, r, editURL(id), err.Error())
		return
	}

	post, err := h.posts.Update(id, form.draft())
	if err != nil {
		if internal_errors.IsConflict(err) {
			h.redirectWithFlash(w, r, editURL(id), err.Error())
			return
		}
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	http.Redirect(w, r, postURL(post.Id), http.StatusSeeOther)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := web.ParseId(chi.URLParam(r, "id"))
	if err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.posts.Delete(id); err != nil {
		web.WriteErrorAndStatusCode(w, err)
		return
	}

	logger.Log.Info("post deleted", "post", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func postURL(id int64) string { return fmt.Sprintf("/post/%d", id) }
func editURL(id int64) string { return fmt.Sprintf("/edit-post/%d", id) }
