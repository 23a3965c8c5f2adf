package screens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/khushisingh18/Ai-blog-website/client"
	"github.com/khushisingh18/Ai-blog-website/internal/localstate"
	"github.com/khushisingh18/Ai-blog-website/internal/session"
)

const (
	annToken    = "tok-ann"
	annPassword = "Secret#123"
)

// fakeBackend is an in-memory stand-in for the blogging API.
type fakeBackend struct {
	mu sync.Mutex

	ann      client.Identity
	others   map[string]client.Identity
	blogs    []client.Blog
	comments map[string][]client.Comment

	lastListQuery  string
	lastCreate     client.CreateBlogRequest
	lastUpdate     client.UpdateProfileRequest
	translateFail  int
	translateMsg   string
	failCommunity  string
	profileCalls   int
	userCalls      int
	personalizedOK bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		ann:    client.Identity{ID: "u1", Name: "Ann", Email: "ann@example.com", Points: 5, Level: 1},
		others: map[string]client.Identity{"u2": {ID: "u2", Name: "Bob", Points: 40, Level: 2}},
		blogs: []client.Blog{
			{ID: "b1", Title: "Go Concurrency", Content: "Channels **rock**", Tags: []string{"go", "programming"}, Author: client.Author{ID: "u1", Name: "Ann"}, Likes: []string{"u2"}, CommentsCount: 1, ReadTime: 3},
			{ID: "b2", Title: "Baking Bread", Content: "Flour and water", Tags: []string{"Food"}, Author: client.Author{ID: "u2", Name: "Bob"}, Likes: []string{"u1", "u2"}, ReadTime: 5},
		},
		comments: map[string][]client.Comment{
			"b1": {{ID: "c0", Content: "Nice", Author: client.Author{ID: "u2", Name: "Bob"}}},
		},
		personalizedOK: true,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func message(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (f *fakeBackend) authed(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+annToken
}

func (f *fakeBackend) router() http.Handler {
	r := mux.NewRouter()
	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !f.authed(r) {
				message(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			h(w, r)
		}
	}
	open := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			h(w, r)
		}
	}

	r.HandleFunc("/auth/login", open(func(w http.ResponseWriter, r *http.Request) {
		var req client.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != f.ann.Email || req.Password != annPassword {
			message(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeJSON(w, http.StatusOK, client.AuthResponse{Token: annToken, Identity: f.ann})
	})).Methods(http.MethodPost)

	r.HandleFunc("/auth/register", open(func(w http.ResponseWriter, r *http.Request) {
		var req client.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email == f.ann.Email {
			message(w, http.StatusBadRequest, "User already exists")
			return
		}
		f.ann = client.Identity{ID: "u1", Name: req.Name, Email: req.Email}
		writeJSON(w, http.StatusCreated, client.AuthResponse{Token: annToken, Identity: f.ann})
	})).Methods(http.MethodPost)

	r.HandleFunc("/auth/profile", guard(func(w http.ResponseWriter, r *http.Request) {
		f.profileCalls++
		writeJSON(w, http.StatusOK, client.ProfileResponse{User: f.ann, Stats: client.ProfileStats{BlogsPublished: 1, CommentsPosted: 4}})
	})).Methods(http.MethodGet)

	r.HandleFunc("/auth/profile", guard(func(w http.ResponseWriter, r *http.Request) {
		var req client.UpdateProfileRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.lastUpdate = req
		if req.Name == "" {
			message(w, http.StatusBadRequest, "Name cannot be empty")
			return
		}
		f.ann.Name, f.ann.Bio, f.ann.Avatar = req.Name, req.Bio, req.Avatar
		f.ann.PreferredLanguage, f.ann.Interests = req.PreferredLanguage, req.Interests
		writeJSON(w, http.StatusOK, f.ann)
	})).Methods(http.MethodPut)

	r.HandleFunc("/auth/user/{id}", open(func(w http.ResponseWriter, r *http.Request) {
		f.userCalls++
		u, ok := f.others[mux.Vars(r)["id"]]
		if !ok {
			message(w, http.StatusNotFound, "User not found")
			return
		}
		writeJSON(w, http.StatusOK, client.ProfileResponse{User: u, Stats: client.ProfileStats{BlogsPublished: 1}})
	})).Methods(http.MethodGet)

	r.HandleFunc("/blog/feed/personalized", guard(func(w http.ResponseWriter, r *http.Request) {
		if !f.personalizedOK {
			message(w, http.StatusInternalServerError, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, client.ListBlogsResponse{Blogs: f.blogs[:1]})
	})).Methods(http.MethodGet)

	r.HandleFunc("/blog", open(func(w http.ResponseWriter, r *http.Request) {
		f.lastListQuery = r.URL.RawQuery
		blogs := f.blogs
		if author := r.URL.Query().Get("author"); author != "" {
			blogs = nil
			for _, b := range f.blogs {
				if b.Author.ID == author {
					blogs = append(blogs, b)
				}
			}
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		writeJSON(w, http.StatusOK, client.ListBlogsResponse{Blogs: blogs, TotalPages: 3, CurrentPage: page, Total: len(blogs)})
	})).Methods(http.MethodGet)

	r.HandleFunc("/blog", guard(func(w http.ResponseWriter, r *http.Request) {
		var req client.CreateBlogRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.lastCreate = req
		b := client.Blog{ID: "b" + strconv.Itoa(len(f.blogs)+1), Title: req.Title, Content: req.Content, Tags: req.Tags, Author: client.Author{ID: f.ann.ID, Name: f.ann.Name}}
		f.blogs = append(f.blogs, b)
		writeJSON(w, http.StatusCreated, b)
	})).Methods(http.MethodPost)

	r.HandleFunc("/blog/{id}", open(func(w http.ResponseWriter, r *http.Request) {
		b, ok := f.find(mux.Vars(r)["id"])
		if !ok {
			message(w, http.StatusNotFound, "Blog not found")
			return
		}
		writeJSON(w, http.StatusOK, client.BlogDetailResponse{Blog: *b, Comments: f.comments[b.ID]})
	})).Methods(http.MethodGet)

	r.HandleFunc("/blog/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		b, ok := f.find(id)
		if !ok {
			message(w, http.StatusNotFound, "Blog not found")
			return
		}
		if b.Author.ID != f.ann.ID {
			message(w, http.StatusForbidden, "Not authorized to delete this blog")
			return
		}
		kept := f.blogs[:0]
		for _, x := range f.blogs {
			if x.ID != id {
				kept = append(kept, x)
			}
		}
		f.blogs = kept
		writeJSON(w, http.StatusOK, map[string]string{"message": "Blog deleted"})
	})).Methods(http.MethodDelete)

	r.HandleFunc("/blog/{id}/like", guard(func(w http.ResponseWriter, r *http.Request) {
		b, ok := f.find(mux.Vars(r)["id"])
		if !ok {
			message(w, http.StatusNotFound, "Blog not found")
			return
		}
		liked := b.LikedBy(f.ann.ID)
		if liked {
			var kept []string
			for _, id := range b.Likes {
				if id != f.ann.ID {
					kept = append(kept, id)
				}
			}
			b.Likes = kept
		} else {
			b.Likes = append(b.Likes, f.ann.ID)
		}
		writeJSON(w, http.StatusOK, client.LikeResponse{IsLiked: !liked, Likes: len(b.Likes)})
	})).Methods(http.MethodPost)

	r.HandleFunc("/blog/{id}/comment", guard(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		var req client.CommentRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		c := client.Comment{ID: "c" + strconv.Itoa(len(f.comments[id])+1), Content: req.Content, Author: client.Author{ID: f.ann.ID, Name: f.ann.Name}}
		f.comments[id] = append([]client.Comment{c}, f.comments[id]...)
		writeJSON(w, http.StatusCreated, c)
	})).Methods(http.MethodPost)

	r.HandleFunc("/ai/translate", open(func(w http.ResponseWriter, r *http.Request) {
		if f.translateFail != 0 {
			message(w, f.translateFail, f.translateMsg)
			return
		}
		var req client.TranslateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b, _ := f.find(req.BlogID)
		writeJSON(w, http.StatusOK, client.TranslateResponse{
			Title:   "[" + req.TargetLanguage + "] " + b.Title,
			Content: "[" + req.TargetLanguage + "] " + b.Content,
		})
	})).Methods(http.MethodPost)

	section := func(name string, body func() any) http.HandlerFunc {
		return open(func(w http.ResponseWriter, r *http.Request) {
			if f.failCommunity == name {
				message(w, http.StatusInternalServerError, "Server error")
				return
			}
			writeJSON(w, http.StatusOK, body())
		})
	}
	r.HandleFunc("/community/leaderboard", section("leaderboard", func() any {
		return map[string]any{"leaderboard": []client.Identity{f.others["u2"], f.ann}}
	})).Methods(http.MethodGet)
	r.HandleFunc("/community/badges", section("badges", func() any {
		return map[string]any{"badges": []client.Badge{{Name: "First Post", Icon: "✍️", Description: "Publish a blog"}}}
	})).Methods(http.MethodGet)
	r.HandleFunc("/community/stats", section("stats", func() any {
		return map[string]any{"stats": client.CommunityStats{TotalUsers: 2, TotalBlogs: len(f.blogs), TotalLanguages: 12, TotalViews: 99}}
	})).Methods(http.MethodGet)
	return r
}

func (f *fakeBackend) find(id string) (*client.Blog, bool) {
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			return &f.blogs[i], true
		}
	}
	return nil, false
}

type harness struct {
	backend *fakeBackend
	api     *client.Client
	session *session.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fb := newFakeBackend()
	srv := httptest.NewServer(fb.router())
	t.Cleanup(srv.Close)

	kv, err := localstate.OpenStore(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	sess := session.New(kv, nil)
	c, err := client.New(srv.URL, client.WithTokenSource(sess))
	require.NoError(t, err)
	sess.SetAuthenticator(c)
	require.NoError(t, sess.Initialize(context.Background()))
	return &harness{backend: fb, api: c, session: sess}
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	_, err := h.session.Login(context.Background(), "ann@example.com", annPassword)
	require.NoError(t, err)
}

func failureMessage(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	var fe *FailureError
	require.ErrorAs(t, err, &fe)
	return strings.TrimSpace(fe.Message)
}
