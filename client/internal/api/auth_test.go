package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	clienterrors "github.com/khushisingh18/Ai-blog-website/client/internal/errors"
	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req types.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "a@b.com" || req.Password != "secret123" {
			t.Errorf("unexpected body %+v", req)
		}
		_, _ = w.Write([]byte(`{"token":"t1","_id":"u1","name":"Ann","points":0}`))
	}))
	defer srv.Close()
	got, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "a@b.com", Password: "secret123"})
	if err != nil || got == nil || got.Token != "t1" || got.ID != "u1" || got.Name != "Ann" {
		t.Fatalf("Login unexpected: got=%+v err=%v", got, err)
	}
}

func TestLogin_RejectedCarriesBackendMessage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()
	_, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "a@b.com", Password: "x"})
	apiErr, ok := clienterrors.AsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Invalid credentials" {
		t.Fatalf("Login unexpected error: %v", err)
	}
}

func TestRegister_ShapeMismatch(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"u1","name":"Ann"}`))
	}))
	defer srv.Close()
	_, err := Register(context.Background(), srv.Client(), srv.URL, types.RegisterRequest{Name: "Ann", Email: "a@b.com", Password: "Secret#123"})
	var se *types.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError for missing token, got %v", err)
	}
}

func TestProfile_GetAndUpdate(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"user":{"_id":"u1","name":"Ann","points":12,"level":2},"stats":{"blogsPublished":1,"commentsPosted":1}}`))
		case http.MethodPut:
			var req types.UpdateProfileRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(types.Identity{ID: "u1", Name: req.Name, Bio: req.Bio, Interests: req.Interests})
		}
	}))
	defer srv.Close()

	p, err := GetProfile(context.Background(), srv.Client(), srv.URL)
	if err != nil || p.User.Points != 12 || p.Stats.BlogsPublished != 1 {
		t.Fatalf("GetProfile unexpected: got=%+v err=%v", p, err)
	}
	id, err := UpdateProfile(context.Background(), srv.Client(), srv.URL, types.UpdateProfileRequest{Name: "Annie", Bio: "hi", Interests: []string{"go"}})
	if err != nil || id.Name != "Annie" || len(id.Interests) != 1 {
		t.Fatalf("UpdateProfile unexpected: got=%+v err=%v", id, err)
	}
}

func TestGetUser_PathAndValidation(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/user/u9" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"user":{"_id":"u9","name":"Bo"},"stats":{}}`))
	}))
	defer srv.Close()
	p, err := GetUser(context.Background(), srv.Client(), srv.URL, "u9")
	if err != nil || p.User.Name != "Bo" {
		t.Fatalf("GetUser unexpected: got=%+v err=%v", p, err)
	}
	if _, err := GetUser(context.Background(), srv.Client(), srv.URL, ""); err == nil {
		t.Fatal("expected validation error for empty user id")
	}
}

func TestAuth_HTTPDoError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := Login(context.Background(), hc, "http://example.com", types.LoginRequest{}); err == nil {
		t.Fatal("expected Do error for Login")
	}
	if _, err := GetProfile(context.Background(), hc, "http://example.com"); err == nil {
		t.Fatal("expected Do error for GetProfile")
	}
}

func TestLogin_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dummy := httptest.NewServer(http.NotFoundHandler())
	defer dummy.Close()
	if _, err := Login(ctx, dummy.Client(), dummy.URL, types.LoginRequest{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled for Login, got %v", err)
	}
}
