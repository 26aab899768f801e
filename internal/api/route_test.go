package api

import (
	"SocialMapp/internal/api/handler"
	"SocialMapp/internal/pkg/security"
	"SocialMapp/internal/repository/memory"
	"SocialMapp/internal/service"
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memBlobStore) Put(_ context.Context, name string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[name] = data
	return "http://blob.local/" + name, nil
}

func (m *memBlobStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, name)
	return nil
}

type memRevocations struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (m *memRevocations) IsRevoked(_ context.Context, signature string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[signature], nil
}

func (m *memRevocations) Revoke(_ context.Context, signature string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[signature] = true
	return nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t        *testing.T
	engine   *gin.Engine
	verifier *security.Verifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	blob := &memBlobStore{objects: make(map[string][]byte)}
	identitySvc := service.NewIdentityService(store.Users)
	likeSvc := service.NewLikeService(store.Likes, store.Posts, nil)
	commentSvc := service.NewCommentService(store.Comments, store.Posts, identitySvc, nil)
	postSvc := service.NewPostService(store.Posts, commentSvc, likeSvc, identitySvc, blob, nil)
	feedSvc := service.NewFeedService(postSvc, commentSvc, likeSvc, identitySvc)

	verifier := security.NewVerifier("test-secret", "SocialMapp", &memRevocations{revoked: make(map[string]bool)})
	group := &HandlersGroup{
		PostHandler:    handler.NewPostHandler(feedSvc),
		CommentHandler: handler.NewCommentHandler(feedSvc),
		LikeHandler:    handler.NewLikeHandler(feedSvc),
		UserHandler:    handler.NewUserHandler(feedSvc, verifier),
	}
	engine := SetupRouter(group, RouterOptions{Verifier: verifier, AllowOrigins: []string{"*"}})
	return &testServer{t: t, engine: engine, verifier: verifier}
}

func (s *testServer) token(uid, email string) string {
	tok, err := s.verifier.GenerateToken(uid, email, time.Hour)
	require.NoError(s.t, err)
	return tok
}

func (s *testServer) do(method, path, token string, body any) (int, envelope) {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(s.t, err)
	}
	return s.doRaw(method, path, token, raw)
}

func (s *testServer) doRaw(method, path, token string, raw []byte) (int, envelope) {
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestPing_NoAuth(t *testing.T) {
	s := newTestServer(t)
	code, env := s.do(http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", env.Message)
}

func TestAuth_Required(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, 401, env.Code)

	expired, err := s.verifier.GenerateToken("uid-a", "a@example.com", -time.Minute)
	require.NoError(t, err)
	code, env = s.do(http.MethodGet, "/api/posts", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, service.ErrExpiredCredential.Error(), env.Message)
}

func TestPostLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	alice := s.token("uid-alice", "alice@example.com")
	bob := s.token("uid-bob", "bob@example.com")

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	code, env := s.do(http.MethodPost, "/api/posts", alice, map[string]string{
		"text":        "hello world",
		"imageBase64": "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	post := decodeData[map[string]any](t, env)
	postID := post["id"].(string)
	assert.NotEmpty(t, post["imageUrl"])

	code, _ = s.do(http.MethodPost, "/api/posts/"+postID+"/comments", bob, map[string]string{"text": "nice"})
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodPost, "/api/posts/"+postID+"/like", bob, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, decodeData[map[string]any](t, env)["likesCount"])

	code, env = s.do(http.MethodPost, "/api/posts/"+postID+"/like", bob, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, service.ErrAlreadyLiked.Error(), env.Message)

	code, env = s.do(http.MethodGet, "/api/posts/"+postID+"/likes", bob, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, decodeData[map[string]any](t, env)["hasLiked"])

	code, env = s.do(http.MethodGet, "/api/posts", bob, nil)
	require.Equal(t, http.StatusOK, code)
	feed := decodeData[[]map[string]any](t, env)
	require.Len(t, feed, 1)
	assert.Equal(t, "alice@example.com", feed[0]["displayName"])

	code, _ = s.do(http.MethodDelete, "/api/posts/"+postID, bob, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(http.MethodDelete, "/api/posts/"+postID, alice, nil)
	require.Equal(t, http.StatusOK, code)
	res := decodeData[map[string]any](t, env)
	assert.EqualValues(t, 1, res["deletedComments"])
	assert.EqualValues(t, 1, res["deletedLikes"])

	code, _ = s.do(http.MethodGet, "/api/posts/"+postID+"/comments", bob, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreatePost_BadInput(t *testing.T) {
	s := newTestServer(t)
	alice := s.token("uid-alice", "alice@example.com")

	code, _ := s.do(http.MethodPost, "/api/posts", alice, map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/api/posts", alice, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := s.do(http.MethodPost, "/api/posts", alice, map[string]string{"text": "x", "imageBase64": "%%%"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, service.ErrInvalidImage.Error(), env.Message)

	for _, body := range []string{`{"text":`, `{"text":123}`, ``} {
		code, env = s.doRaw(http.MethodPost, "/api/posts", alice, []byte(body))
		assert.Equal(t, http.StatusBadRequest, code, body)
		assert.Equal(t, http.StatusBadRequest, env.Code, body)
	}

	code, _ = s.doRaw(http.MethodPost, "/api/posts/any/comments", alice, []byte(`{"text":`))
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = s.doRaw(http.MethodPost, "/api/user/nickname", alice, []byte(`{"nickname":true}`))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestNicknameAndProfile(t *testing.T) {
	s := newTestServer(t)
	alice := s.token("uid-alice", "alice@example.com")

	code, env := s.do(http.MethodGet, "/api/user/profile", alice, nil)
	require.Equal(t, http.StatusOK, code)
	profile := decodeData[map[string]any](t, env)
	assert.Equal(t, "alice@example.com", profile["email"])
	assert.NotContains(t, profile, "nickname")

	code, _ = s.do(http.MethodPost, "/api/user/nickname", alice, map[string]string{"nickname": "  "})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodPost, "/api/user/nickname", alice, map[string]string{"nickname": " Al "})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Al", decodeData[map[string]any](t, env)["nickname"])
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	alice := s.token("uid-alice", "alice@example.com")

	code, _ := s.do(http.MethodPost, "/api/user/logout", alice, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/api/user/profile", alice, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
