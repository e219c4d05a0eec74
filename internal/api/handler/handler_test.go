package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/config"
	"vidtube-go/internal/model"
	"vidtube-go/internal/service"
	"vidtube-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUsers 只实现处理器测试用到的方法
type stubUsers struct {
	service.UserStore

	mu    sync.Mutex
	users map[int64]*model.User
}

func newStubUsers(users ...*model.User) *stubUsers {
	s := &stubUsers{users: map[int64]*model.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) GetByUsernameOrEmail(_ context.Context, username, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) SetRefreshToken(_ context.Context, id int64, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.RefreshToken = token
	return nil
}

func (s *stubUsers) RotateRefreshToken(_ context.Context, id int64, current, next string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok || u.RefreshToken != current {
		return false, nil
	}
	u.RefreshToken = next
	return true, nil
}

type stubSubscriptions struct {
	subs map[[2]int64]bool
}

func newStubSubscriptions() *stubSubscriptions {
	return &stubSubscriptions{subs: map[[2]int64]bool{}}
}

func (s *stubSubscriptions) Create(_ context.Context, subscriberID, channelID int64) (bool, error) {
	key := [2]int64{subscriberID, channelID}
	if s.subs[key] {
		return false, nil
	}
	s.subs[key] = true
	return true, nil
}

func (s *stubSubscriptions) Delete(_ context.Context, subscriberID, channelID int64) (bool, error) {
	key := [2]int64{subscriberID, channelID}
	if !s.subs[key] {
		return false, nil
	}
	delete(s.subs, key)
	return true, nil
}

func (s *stubSubscriptions) Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	if deleted, _ := s.Delete(ctx, subscriberID, channelID); deleted {
		return false, nil
	}
	return s.Create(ctx, subscriberID, channelID)
}

func (s *stubSubscriptions) CountSubscribers(_ context.Context, channelID int64) (int64, error) {
	var n int64
	for key := range s.subs {
		if key[1] == channelID {
			n++
		}
	}
	return n, nil
}

func (s *stubSubscriptions) ListChannels(context.Context, int64, int, int) ([]model.User, int64, error) {
	return nil, 0, nil
}

func (s *stubSubscriptions) ListSubscribers(context.Context, int64, int, int) ([]model.User, int64, error) {
	return nil, 0, nil
}

func newTestTokens() *utils.TokenManager {
	return utils.NewTokenManager(&config.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
	}, "vidtube-test")
}

var testCookies = CookieConfig{AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour}

// newTestEngine 注册错误处理；as 非空时模拟已登录用户
func newTestEngine(as *model.User) (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	authed := r.Group("/")
	authed.Use(func(c *gin.Context) {
		if as != nil {
			c.Set(middleware.ContextKeyUserID, as.ID)
			c.Set(middleware.ContextKeyUser, as)
		}
		c.Next()
	})
	return r, authed
}

func doJSON(t *testing.T, r http.Handler, method, target string, payload interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
