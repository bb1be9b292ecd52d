package auction_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auction"
	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/repository"
	authsvc "newsdesk/internal/service/auth"
	aucUC "newsdesk/internal/usecase/auction"
)

const testSecret = "0123456789abcdef0123456789abcdef-auctions"

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

/* ───────── スタブ実装 ───────── */

// mu が SELECT ... FOR UPDATE の代わり
type stubRepo struct {
	mu     sync.Mutex
	rows   map[int64]*entity.Auction
	bids   []*entity.Bid
	nextID int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		rows: map[int64]*entity.Auction{
			1: {ID: 1, Title: "Toyota RAV4", StartingBid: 100, CurrentBid: 100, MinIncrement: 10, EndTime: fixedNow.Add(48 * time.Hour), Status: entity.AuctionActive, Category: "cars"},
			2: {ID: 2, Title: "Imigongo painting", StartingBid: 50, CurrentBid: 50, MinIncrement: 5, EndTime: fixedNow.Add(2 * time.Hour), Status: entity.AuctionActive, Category: "art"},
			3: {ID: 3, Title: "Expired lot", StartingBid: 10, CurrentBid: 10, MinIncrement: 1, EndTime: fixedNow.Add(-time.Minute), Status: entity.AuctionActive},
			4: {ID: 4, Title: "Sold", StartingBid: 10, CurrentBid: 80, MinIncrement: 1, EndTime: fixedNow.Add(-24 * time.Hour), Status: entity.AuctionEnded},
		},
		nextID: 5,
	}
}

func (s *stubRepo) List(_ context.Context, f entity.AuctionFilter) ([]*entity.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Auction
	for _, a := range s.rows {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndTime.Before(out[j].EndTime) })
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}
func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.rows[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}
func (s *stubRepo) RecentBids(_ context.Context, id int64, limit int) ([]*entity.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Bid
	for i := len(s.bids) - 1; i >= 0 && len(out) < limit; i-- {
		if s.bids[i].AuctionID == id {
			out = append(out, s.bids[i])
		}
	}
	return out, nil
}
func (s *stubRepo) Create(_ context.Context, a *entity.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextID
	s.nextID++
	cp := *a
	s.rows[a.ID] = &cp
	return nil
}
func (s *stubRepo) Update(_ context.Context, a *entity.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[a.ID]; !ok {
		return fmt.Errorf("update: %w", entity.ErrNotFound)
	}
	cp := *a
	s.rows[a.ID] = &cp
	return nil
}
func (s *stubRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("delete: %w", entity.ErrNotFound)
	}
	delete(s.rows, id)
	return nil
}
func (s *stubRepo) PlaceBid(_ context.Context, bid *entity.Bid, check repository.BidFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.rows[bid.AuctionID]
	if !ok {
		return entity.ErrNotFound
	}
	if err := check(a); err != nil {
		return err
	}
	bid.ID = int64(len(s.bids) + 1)
	s.bids = append(s.bids, bid)
	a.CurrentBid = bid.Amount
	a.TotalBids++
	return nil
}
func (s *stubRepo) CloseExpired(context.Context, time.Time) (int64, error) { return 0, nil }
func (s *stubRepo) DeleteAll(context.Context) (int64, error)               { return 0, nil }

type fixture struct {
	mux    *http.ServeMux
	repo   *stubRepo
	tokens *authsvc.TokenService
}

func newFixture() *fixture {
	repo := newStubRepo()
	tokens := authsvc.NewTokenService(testSecret, time.Hour)
	mux := http.NewServeMux()
	svc := aucUC.Service{Repo: repo, Now: func() time.Time { return fixedNow }}
	auction.Register(mux, svc, auth.Guard{Tokens: tokens}, nil)
	return &fixture{mux: mux, repo: repo, tokens: tokens}
}

func (f *fixture) token(t *testing.T, id int64, role entity.Role) string {
	t.Helper()
	tok, _, err := f.tokens.Issue(&entity.User{ID: id, Email: fmt.Sprintf("u%d@newsdesk.rw", id), Role: role})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tok
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.mux.ServeHTTP(rr, req)
	return rr
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	return body.Error
}

/* ───────── テスト本体 ───────── */

func TestList(t *testing.T) {
	f := newFixture()

	tests := []struct {
		query string
		want  []int64
	}{
		{query: "", want: []int64{4, 3, 2, 1}},
		{query: "?status=active", want: []int64{3, 2, 1}},
		{query: "?status=active&limit=2", want: []int64{3, 2}},
		{query: "?category=cars", want: []int64{1}},
	}
	for _, tt := range tests {
		rr := f.do(http.MethodGet, "/api/auctions"+tt.query, "", "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%q: status = %d", tt.query, rr.Code)
		}
		var got struct {
			Success bool          `json:"success"`
			Data    []auction.DTO `json:"data"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		var ids []int64
		for _, a := range got.Data {
			ids = append(ids, a.ID)
		}
		if !got.Success || fmt.Sprint(ids) != fmt.Sprint(tt.want) {
			t.Errorf("%q: ids = %v, want %v", tt.query, ids, tt.want)
		}
	}

	if rr := f.do(http.MethodGet, "/api/auctions?status=sold", "", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("bad status: %d", rr.Code)
	}
}

func TestBid(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		want    int
		wantErr string
	}{
		{name: "accepted at floor", path: "/api/auctions/1/bid", body: `{"amount":110}`, want: http.StatusOK},
		{name: "below floor", path: "/api/auctions/1/bid", body: `{"amount":115}`, want: http.StatusBadRequest, wantErr: "bid too low"},
		{name: "past end time", path: "/api/auctions/3/bid", body: `{"amount":100}`, want: http.StatusBadRequest, wantErr: "auction is not active"},
		{name: "ended", path: "/api/auctions/4/bid", body: `{"amount":1000}`, want: http.StatusBadRequest, wantErr: "auction is not active"},
		{name: "missing", path: "/api/auctions/99/bid", body: `{"amount":1000}`, want: http.StatusNotFound},
		{name: "zero amount", path: "/api/auctions/1/bid", body: `{"amount":0}`, want: http.StatusBadRequest},
	}
	f := newFixture()
	tok := f.token(t, 12, entity.RoleAuthor)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := f.do(http.MethodPost, tt.path, tt.body, tok)
			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rr.Code, tt.want, rr.Body)
			}
			if tt.wantErr != "" {
				if got := errorOf(t, rr); got != tt.wantErr {
					t.Errorf("error = %q, want %q", got, tt.wantErr)
				}
			}
		})
	}

	a := f.repo.rows[1]
	if a.CurrentBid != 110 || a.TotalBids != 1 {
		t.Errorf("auction = %+v", a)
	}
	if f.repo.bids[0].UserID != 12 {
		t.Errorf("bid user = %d", f.repo.bids[0].UserID)
	}

	if rr := f.do(http.MethodPost, "/api/auctions/1/bid", `{"amount":500}`, ""); rr.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d", rr.Code)
	}
}

// 同じ前提状態に対する2つの入札は片方だけ通る
func TestBid_Concurrent(t *testing.T) {
	f := newFixture()
	tokA := f.token(t, 1, entity.RoleAuthor)
	tokB := f.token(t, 2, entity.RoleAuthor)

	var wg sync.WaitGroup
	codes := make([]int, 2)
	for i, tok := range []string{tokA, tokB} {
		wg.Add(1)
		go func(i int, tok string) {
			defer wg.Done()
			codes[i] = f.do(http.MethodPost, "/api/auctions/2/bid", `{"amount":55}`, tok).Code
		}(i, tok)
	}
	wg.Wait()

	sort.Ints(codes)
	if codes[0] != http.StatusOK || codes[1] != http.StatusBadRequest {
		t.Errorf("codes = %v", codes)
	}
	if a := f.repo.rows[2]; a.CurrentBid != 55 || a.TotalBids != 1 {
		t.Errorf("auction = %+v", a)
	}
}

func TestGet_WithBids(t *testing.T) {
	f := newFixture()
	tok := f.token(t, 5, entity.RoleAuthor)
	for _, amt := range []int{110, 120, 130} {
		if rr := f.do(http.MethodPost, "/api/auctions/1/bid", fmt.Sprintf(`{"amount":%d}`, amt), tok); rr.Code != http.StatusOK {
			t.Fatalf("bid %d: %d", amt, rr.Code)
		}
	}

	rr := f.do(http.MethodGet, "/api/auctions/1", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got struct {
		Data auction.DTO `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got.Data.Bids) != 3 || got.Data.Bids[0].Amount != 130 {
		t.Errorf("bids = %+v", got.Data.Bids)
	}
	if got.Data.CurrentBid != 130 || got.Data.TotalBids != 3 {
		t.Errorf("auction = %+v", got.Data)
	}

	if rr := f.do(http.MethodGet, "/api/auctions/99", "", ""); rr.Code != http.StatusNotFound {
		t.Errorf("missing: %d", rr.Code)
	}
}

func TestCreate(t *testing.T) {
	f := newFixture()
	tok := f.token(t, 8, entity.RoleEditor)

	end := fixedNow.Add(72 * time.Hour).Format(time.RFC3339)
	rr := f.do(http.MethodPost, "/api/auctions",
		`{"title":"Cow","startingBid":300000,"minIncrement":10000,"endTime":"`+end+`"}`, tok)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body)
	}
	a := f.repo.rows[5]
	if a.CurrentBid != 300000 || a.Status != entity.AuctionActive || a.SellerID == nil || *a.SellerID != 8 {
		t.Errorf("stored = %+v", a)
	}

	past := fixedNow.Add(-time.Hour).Format(time.RFC3339)
	bad := []string{
		`{"startingBid":1,"minIncrement":1,"endTime":"` + end + `"}`,
		`{"title":"x","startingBid":0,"minIncrement":1,"endTime":"` + end + `"}`,
		`{"title":"x","startingBid":1,"minIncrement":-1,"endTime":"` + end + `"}`,
		`{"title":"x","startingBid":1,"minIncrement":1,"endTime":"` + past + `"}`,
	}
	for _, b := range bad {
		if rr := f.do(http.MethodPost, "/api/auctions", b, tok); rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", b, rr.Code)
		}
	}
}

func TestUpdate_IgnoresBidFields(t *testing.T) {
	f := newFixture()
	tok := f.token(t, 1, entity.RoleEditor)

	rr := f.do(http.MethodPut, "/api/auctions/1", `{"title":"Toyota RAV4 2019","currentBid":1,"totalBids":99}`, tok)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body)
	}
	a := f.repo.rows[1]
	if a.Title != "Toyota RAV4 2019" || a.CurrentBid != 100 || a.TotalBids != 0 {
		t.Errorf("stored = %+v", a)
	}

	if rr := f.do(http.MethodPut, "/api/auctions/1", `{"status":"paused"}`, tok); rr.Code != http.StatusBadRequest {
		t.Errorf("bad status: %d", rr.Code)
	}
}

func TestDelete_AdminOnly(t *testing.T) {
	f := newFixture()

	if rr := f.do(http.MethodDelete, "/api/auctions/1", "", f.token(t, 2, entity.RoleEditor)); rr.Code != http.StatusForbidden {
		t.Errorf("editor: %d", rr.Code)
	}
	rr := f.do(http.MethodDelete, "/api/auctions/1", "", f.token(t, 1, entity.RoleAdmin))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"success":true`) {
		t.Errorf("admin: %d %s", rr.Code, rr.Body)
	}
}
