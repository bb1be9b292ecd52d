package admin_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	adminUC "newsdesk/internal/usecase/admin"
	aucUC "newsdesk/internal/usecase/auction"
)

/* ───────── スタブ実装 ───────── */

type stubUsers struct {
	data   map[string]*entity.User
	nextID int64
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.data[email], nil
}
func (s *stubUsers) Get(context.Context, int64) (*entity.User, error) { return nil, nil }
func (s *stubUsers) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range s.data {
		out = append(out, u)
	}
	return out, nil
}
func (s *stubUsers) Create(_ context.Context, u *entity.User) error {
	s.nextID++
	u.ID = s.nextID
	s.data[u.Email] = u
	return nil
}
func (s *stubUsers) UpdateCredentials(_ context.Context, u *entity.User) error {
	s.data[u.Email] = u
	return nil
}
func (s *stubUsers) Count(context.Context) (int64, error) { return int64(len(s.data)), nil }

type stubCategories struct {
	bySlug map[string]*entity.Category
}

func (s *stubCategories) List(context.Context, *bool) ([]*entity.Category, error) { return nil, nil }
func (s *stubCategories) Get(context.Context, int64) (*entity.Category, error) { return nil, nil }
func (s *stubCategories) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	return s.bySlug[slug], nil
}
func (s *stubCategories) Create(_ context.Context, c *entity.Category) error {
	c.ID = int64(len(s.bySlug) + 1)
	s.bySlug[c.Slug] = c
	return nil
}
func (s *stubCategories) Update(context.Context, *entity.Category) error { return nil }
func (s *stubCategories) Delete(context.Context, int64) error { return nil }
func (s *stubCategories) Count(context.Context) (int64, error) {
	return int64(len(s.bySlug)), nil
}

type stubArticles struct {
	ids     map[int64]bool
	resetN  int64
	deleted []int64
}

func (s *stubArticles) List(context.Context, entity.ArticleFilter) ([]*entity.Article, error) {
	return nil, nil
}
func (s *stubArticles) Count(context.Context, entity.ArticleFilter) (int64, error) { return 0, nil }
func (s *stubArticles) Get(context.Context, int64) (*entity.Article, error) { return nil, nil }
func (s *stubArticles) Search(context.Context, string, int) ([]*entity.Article, error) {
	return nil, nil
}
func (s *stubArticles) Create(context.Context, *entity.Article) error { return nil }
func (s *stubArticles) Update(context.Context, *entity.Article) error { return nil }
func (s *stubArticles) Delete(_ context.Context, id int64) error {
	if !s.ids[id] {
		return entity.ErrNotFound
	}
	delete(s.ids, id)
	s.deleted = append(s.deleted, id)
	return nil
}
func (s *stubArticles) SlugExists(context.Context, string, int64) (bool, error) { return false, nil }
func (s *stubArticles) IncrementViews(context.Context, int64) error { return nil }
func (s *stubArticles) ResetFlags(context.Context) (int64, error) { return s.resetN, nil }
func (s *stubArticles) CountByStatus(context.Context) (map[entity.ArticleStatus]int64, error) {
	return map[entity.ArticleStatus]int64{entity.StatusDraft: 2, entity.StatusPublished: 5}, nil
}

type stubAuctions struct {
	purged int64
	closed int64
}

func (s *stubAuctions) List(context.Context, entity.AuctionFilter) ([]*entity.Auction, error) {
	return nil, nil
}
func (s *stubAuctions) Get(context.Context, int64) (*entity.Auction, error) { return nil, nil }
func (s *stubAuctions) RecentBids(context.Context, int64, int) ([]*entity.Bid, error) {
	return nil, nil
}
func (s *stubAuctions) Create(context.Context, *entity.Auction) error { return nil }
func (s *stubAuctions) Update(context.Context, *entity.Auction) error { return nil }
func (s *stubAuctions) Delete(context.Context, int64) error { return nil }
func (s *stubAuctions) PlaceBid(context.Context, *entity.Bid, repository.BidFunc) error {
	return nil
}
func (s *stubAuctions) CloseExpired(context.Context, time.Time) (int64, error) { return s.closed, nil }
func (s *stubAuctions) DeleteAll(context.Context) (int64, error) { return s.purged, nil }

type stubSnapshots struct {
	export   *repository.Snapshot
	imported *repository.Snapshot
}

func (s *stubSnapshots) Export(context.Context) (*repository.Snapshot, error) { return s.export, nil }
func (s *stubSnapshots) Import(_ context.Context, snap *repository.Snapshot) error {
	s.imported = snap
	return nil
}

type fixture struct {
	svc       *adminUC.Service
	users     *stubUsers
	cats      *stubCategories
	articles  *stubArticles
	auctions  *stubAuctions
	snapshots *stubSnapshots
}

func newFixture() *fixture {
	f := &fixture{
		users:     &stubUsers{data: map[string]*entity.User{}},
		cats:      &stubCategories{bySlug: map[string]*entity.Category{}},
		articles:  &stubArticles{ids: map[int64]bool{1: true, 2: true, 3: true}, resetN: 4},
		auctions:  &stubAuctions{purged: 6, closed: 2},
		snapshots: &stubSnapshots{},
	}
	f.svc = &adminUC.Service{
		Users:      f.users,
		Categories: f.cats,
		Articles:   f.articles,
		Auctions:   f.auctions,
		Snapshots:  f.snapshots,
		Closer:     &aucUC.Service{Repo: f.auctions},
		BcryptCost: bcrypt.MinCost,
	}
	return f
}

/* ───────── テスト本体 ───────── */

func TestCreateUser_CreateThenUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	u, created, err := f.svc.CreateUser(ctx, adminUC.UserInput{Email: "Chief@Example.com", Password: "first", Name: "Chief"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "chief@example.com", u.Email)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	u, created, err = f.svc.CreateUser(ctx, adminUC.UserInput{Email: "chief@example.com", Password: "second", Role: entity.RoleEditor})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Chief", u.Name, "empty name keeps the old one")
	assert.Equal(t, entity.RoleEditor, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("second")))

	_, _, err = f.svc.CreateUser(ctx, adminUC.UserInput{Email: "x@example.com", Password: "p", Role: "owner"})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
	_, _, err = f.svc.CreateUser(ctx, adminUC.UserInput{})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestSeedCategories_Idempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	defaults, err := adminUC.DefaultCategories()
	require.NoError(t, err)
	require.Len(t, defaults, 8)
	for _, c := range defaults {
		assert.NotEmpty(t, c.NameRw, "category %s lacks a Kinyarwanda name", c.Slug)
	}

	n, err := f.svc.SeedCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = f.svc.SeedCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDeleteArticles(t *testing.T) {
	f := newFixture()
	deleted, missing, err := f.svc.DeleteArticles(context.Background(), []int64{1, 3, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, []int64{9}, missing)

	_, _, err = f.svc.DeleteArticles(context.Background(), nil)
	assert.ErrorIs(t, err, adminUC.ErrNoArticleIDs)
}

func TestCounters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	n, err := f.svc.ResetArticleFlags(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	n, err = f.svc.PurgeAuctions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = f.svc.CloseAuctions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStats(t *testing.T) {
	f := newFixture()
	f.cats.bySlug["news"] = &entity.Category{ID: 1}
	f.users.data["a@example.com"] = &entity.User{ID: 1}

	st, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	want := &adminUC.Stats{
		Articles:   map[entity.ArticleStatus]int64{entity.StatusDraft: 2, entity.StatusPublished: 5},
		Users:      1,
		Categories: 1,
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]adminUC.Format{
		"dump.json":    adminUC.FormatJSON,
		"dump.YAML":    adminUC.FormatYAML,
		"dir/dump.yml": adminUC.FormatYAML,
	}
	for path, want := range tests {
		got, err := adminUC.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := adminUC.FormatFromPath("dump.csv")
	assert.ErrorIs(t, err, adminUC.ErrUnknownFormat)
}

func sampleSnapshot() *repository.Snapshot {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	published := created.Add(time.Hour)
	catID, authorID := int64(10), int64(20)
	return &repository.Snapshot{
		Users:      []*entity.User{{ID: 20, Email: "ed@example.com", Name: "Ed", Role: entity.RoleEditor, CreatedAt: created}},
		Categories: []*entity.Category{{ID: 10, Name: "News", NameRw: "Amakuru", Slug: "news", Active: true, CreatedAt: created}},
		Articles: []*entity.Article{{
			ID: 1, Title: "Hello", Slug: "hello", Content: "<p>x</p>", CategoryID: &catID, AuthorID: &authorID,
			Status: entity.StatusPublished, PublishedAt: &published, Views: 3, CreatedAt: created,
		}},
		Ads: []*entity.Ad{{ID: 2, Title: "Banner", ImageURL: "https://x/y.png", Position: entity.PositionFooter, IsActive: true, CreatedAt: created}},
		Advertisements: []*entity.Advertisement{{
			ID: 3, Title: "Job", Company: "Co", Requirements: []string{"a", "b"}, IsActive: true, CreatedAt: created,
		}},
		Auctions: []*entity.Auction{{
			ID: 4, Title: "Lot", StartingBid: 10, CurrentBid: 15, MinIncrement: 1, EndTime: created.Add(48 * time.Hour),
			Images: []string{"https://x/1.jpg"}, Status: entity.AuctionActive, TotalBids: 2, CreatedAt: created,
		}},
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	for _, format := range []adminUC.Format{adminUC.FormatJSON, adminUC.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			f := newFixture()
			f.snapshots.export = sampleSnapshot()

			var buf bytes.Buffer
			doc, err := f.svc.Export(context.Background(), &buf, format)
			require.NoError(t, err)
			assert.Len(t, doc.Articles, 1)
			assert.NotContains(t, buf.String(), "password")

			_, err = f.svc.Import(context.Background(), &buf, format)
			require.NoError(t, err)
			// YAML は nil スライスを [] として書き出す
			if diff := cmp.Diff(sampleSnapshot(), f.snapshots.imported, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImport_Rejects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Import(ctx, strings.NewReader(`{"version": 99}`), adminUC.FormatJSON)
	assert.Error(t, err)

	_, err = f.svc.Import(ctx, strings.NewReader(`{"version":1,"articles":[{"id":1,"status":"archived"}]}`), adminUC.FormatJSON)
	assert.True(t, errors.Is(err, entity.ErrValidationFailed), "err=%v", err)

	_, err = f.svc.Import(ctx, strings.NewReader(`users: [`), adminUC.FormatYAML)
	assert.Error(t, err)

	_, err = f.svc.Import(ctx, strings.NewReader(`{}`), "csv")
	assert.ErrorIs(t, err, adminUC.ErrUnknownFormat)
	assert.Nil(t, f.snapshots.imported)
}
