package handler

import (
	"encoding/base64"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/quillpad-dev/quillpad/internal/config"
	"github.com/quillpad-dev/quillpad/internal/domain"
	"github.com/quillpad-dev/quillpad/internal/markdown"
	"github.com/quillpad-dev/quillpad/internal/middleware"
)

type MockAuthService struct {
	MockRegister func(email, password, name string) (domain.User, string, error)
	MockLogin    func(email, password string) (domain.User, string, error)
}

func (m *MockAuthService) Register(email, password, name string) (domain.User, string, error) {
	if m.MockRegister != nil {
		return m.MockRegister(email, password, name)
	}
	return domain.User{}, "", nil
}

func (m *MockAuthService) Login(email, password string) (domain.User, string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(email, password)
	}
	return domain.User{}, "", nil
}

type MockPostService struct {
	MockAll    func() ([]domain.BlogPost, error)
	MockGet    func(id int64) (domain.BlogPost, error)
	MockCreate func(draft domain.PostDraft, author domain.User) (domain.BlogPost, error)
	MockUpdate func(id int64, draft domain.PostDraft) (domain.BlogPost, error)
	MockDelete func(id int64) error
}

func (m *MockPostService) All() ([]domain.BlogPost, error) {
	if m.MockAll != nil {
		return m.MockAll()
	}
	return nil, nil
}

func (m *MockPostService) Get(id int64) (domain.BlogPost, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.BlogPost{}, nil
}

func (m *MockPostService) Create(draft domain.PostDraft, author domain.User) (domain.BlogPost, error) {
	if m.MockCreate != nil {
		return m.MockCreate(draft, author)
	}
	return domain.BlogPost{}, nil
}

func (m *MockPostService) Update(id int64, draft domain.PostDraft) (domain.BlogPost, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, draft)
	}
	return domain.BlogPost{}, nil
}

func (m *MockPostService) Delete(id int64) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockCommentService struct {
	MockCreate  func(author domain.User, text string, postId int64) (domain.Comment, error)
	MockForPost func(postId int64) ([]domain.Comment, error)
}

func (m *MockCommentService) Create(author domain.User, text string, postId int64) (domain.Comment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(author, text, postId)
	}
	return domain.Comment{}, nil
}

func (m *MockCommentService) ForPost(postId int64) ([]domain.Comment, error) {
	if m.MockForPost != nil {
		return m.MockForPost(postId)
	}
	return nil, nil
}

// testTemplates builds a minimal template set so handlers can render without
// the real files on disk.
func testTemplates(names ...string) map[string]*template.Template {
	templates := map[string]*template.Template{}
	for _, name := range names {
		templates[name] = template.Must(template.New(name).Parse(
			`{{define "layout"}}` + name + `|flash={{.Common.Flash}}{{end}}`))
	}
	return templates
}

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{SessionTTL: time.Hour, CommentMaxLen: 1000}}
}

func newTestHandler(auth *MockAuthService, posts *MockPostService, comments *MockCommentService, templateNames ...string) *Handler {
	if auth == nil {
		auth = &MockAuthService{}
	}
	if posts == nil {
		posts = &MockPostService{}
	}
	if comments == nil {
		comments = &MockCommentService{}
	}
	return New(testTemplates(templateNames...), auth, posts, comments, markdown.New(), testConfig())
}

func createFormRequest(t *testing.T, target string, form url.Values, cookies ...*http.Cookie) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}

func asUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(middleware.ContextWithUser(req.Context(), user))
}

// flashFrom decodes the flash cookie a handler set on the response.
func flashFrom(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashCookie && cookie.MaxAge > 0 {
			decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
			if err != nil {
				t.Fatalf("bad flash cookie: %v", err)
			}
			return string(decoded)
		}
	}
	return ""
}
