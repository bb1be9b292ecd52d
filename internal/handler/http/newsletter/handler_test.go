package newsletter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/newsletter"
	authsvc "newsdesk/internal/service/auth"
	nlUC "newsdesk/internal/usecase/newsletter"
)

const testSecret = "0123456789abcdef0123456789abcdef-newsletter"

/* ───────── スタブ実装 ───────── */

type stubRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Subscriber
}

func (s *stubRepo) Subscribe(_ context.Context, sub *entity.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.rows[sub.Email]; ok {
		old.Active = true
		old.UnsubscribedAt = nil
		if sub.Name != "" {
			old.Name = sub.Name
		}
		*sub = *old
		return nil
	}
	sub.ID = int64(len(s.rows) + 1)
	sub.SubscribedAt = time.Now()
	cp := *sub
	s.rows[sub.Email] = &cp
	return nil
}
func (s *stubRepo) Unsubscribe(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.rows[email]
	if !ok || !sub.Active {
		return entity.ErrNotFound
	}
	now := time.Now()
	sub.Active = false
	sub.UnsubscribedAt = &now
	return nil
}
func (s *stubRepo) List(_ context.Context, active *bool) ([]*entity.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Subscriber
	for _, sub := range s.rows {
		if active == nil || sub.Active == *active {
			out = append(out, sub)
		}
	}
	return out, nil
}

func setup(t *testing.T) (*http.ServeMux, *stubRepo, string) {
	t.Helper()
	repo := &stubRepo{rows: map[string]*entity.Subscriber{}}
	tokens := authsvc.NewTokenService(testSecret, time.Hour)
	mux := http.NewServeMux()
	newsletter.Register(mux, nlUC.Service{Repo: repo}, auth.Guard{Tokens: tokens})
	tok, _, err := tokens.Issue(&entity.User{ID: 1, Email: "admin@newsdesk.rw", Role: entity.RoleAdmin})
	require.NoError(t, err)
	return mux, repo, tok
}

func do(mux *http.ServeMux, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

/* ───────── テスト本体 ───────── */

func TestSubscribeLifecycle(t *testing.T) {
	mux, repo, tok := setup(t)

	rr := do(mux, http.MethodPost, "/api/newsletter/subscribe", `{"email":" Reader@Example.RW ","name":"Reader"}`, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.Contains(t, repo.rows, "reader@example.rw")

	rr = do(mux, http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"reader@example.rw"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	sub := repo.rows["reader@example.rw"]
	assert.False(t, sub.Active)
	assert.NotNil(t, sub.UnsubscribedAt)

	// 解除済みは 404
	rr = do(mux, http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"reader@example.rw"}`, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// 再登録で再有効化
	rr = do(mux, http.MethodPost, "/api/newsletter/subscribe", `{"email":"reader@example.rw"}`, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, repo.rows["reader@example.rw"].Active)
	assert.Nil(t, repo.rows["reader@example.rw"].UnsubscribedAt)
	assert.Len(t, repo.rows, 1)

	rr = do(mux, http.MethodGet, "/api/newsletter/subscribers?active=true", "", tok)
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Subscribers []newsletter.SubscriberDTO `json:"subscribers"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&list))
	require.Len(t, list.Subscribers, 1)
	assert.Equal(t, "Reader", list.Subscribers[0].Name)
}

func TestSubscribe_Invalid(t *testing.T) {
	mux, _, _ := setup(t)

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`, `not json`} {
		rr := do(mux, http.MethodPost, "/api/newsletter/subscribe", body, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
	assert.Equal(t, http.StatusNotFound,
		do(mux, http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"ghost@example.rw"}`, "").Code)
}

func TestSubscribers_RequiresAuth(t *testing.T) {
	mux, _, _ := setup(t)
	assert.Equal(t, http.StatusUnauthorized, do(mux, http.MethodGet, "/api/newsletter/subscribers", "", "").Code)
}
