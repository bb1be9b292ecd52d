package advertisement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
	advUC "newsdesk/internal/usecase/advertisement"
)

/* ───────── スタブ実装 ───────── */

type stubRepo struct {
	data    map[int64]*entity.Advertisement
	nextID  int64
	filters []entity.AdvertisementFilter
	err     error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Advertisement{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context, f entity.AdvertisementFilter) ([]*entity.Advertisement, error) {
	s.filters = append(s.filters, f)
	var out []*entity.Advertisement
	for _, a := range s.data {
		out = append(out, a)
	}
	return out, s.err
}
func (s *stubRepo) Count(_ context.Context, _ entity.AdvertisementFilter) (int64, error) {
	return int64(len(s.data)), s.err
}
func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Advertisement, error) {
	if a, ok := s.data[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, s.err
}
func (s *stubRepo) Create(_ context.Context, a *entity.Advertisement) error {
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return s.err
}
func (s *stubRepo) Update(_ context.Context, a *entity.Advertisement) error {
	if _, ok := s.data[a.ID]; !ok {
		return entity.ErrNotFound
	}
	s.data[a.ID] = a
	return s.err
}
func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}
func (s *stubRepo) IncrementViews(_ context.Context, id int64) (int64, error) {
	a, ok := s.data[id]
	if !ok {
		return 0, entity.ErrNotFound
	}
	a.Views++
	return a.Views, nil
}
func (s *stubRepo) IncrementApplicants(_ context.Context, id int64) (int64, error) {
	a, ok := s.data[id]
	if !ok {
		return 0, entity.ErrNotFound
	}
	a.Applicants++
	return a.Applicants, nil
}

/* ───────── テスト本体 ───────── */

func jobInput() advUC.Input {
	return advUC.Input{
		Title:           "Senior Reporter",
		FullDescription: "Cover the business desk.",
		Company:         "Kigali Daily",
		Category:        "Media",
		Location:        "Kigali",
		ContactEmail:    "jobs@example.com",
		Requirements:    []string{"5 years experience"},
	}
}

func TestCreate(t *testing.T) {
	svc := &advUC.Service{Repo: newStub()}
	a, err := svc.Create(context.Background(), jobInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.True(t, a.IsActive)
	assert.Equal(t, []string{"5 years experience"}, a.Requirements)
}

func TestCreate_Validation(t *testing.T) {
	svc := &advUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), advUC.Input{})
	var fields entity.ValidationErrors
	require.True(t, errors.As(err, &fields), "err=%v", err)
	for _, f := range []string{"title", "fullDescription", "company", "category", "location"} {
		assert.NotEmpty(t, fields[f], "missing field %s", f)
	}

	in := jobInput()
	in.ContactEmail = "not-an-email"
	in.ContactWebsite = "notaurl"
	_, err = svc.Create(context.Background(), in)
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "contactEmail")
	assert.Contains(t, fields, "contactWebsite")
}

func TestList_DefaultsToActive(t *testing.T) {
	repo := newStub()
	svc := &advUC.Service{Repo: repo}
	_, _ = svc.Create(context.Background(), jobInput())

	page, err := svc.List(context.Background(), entity.AdvertisementFilter{Search: "  reporter ", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Items, 1)

	f := repo.filters[len(repo.filters)-1]
	require.NotNil(t, f.Active)
	assert.True(t, *f.Active)
	assert.Equal(t, "reporter", f.Search)

	no := false
	_, err = svc.List(context.Background(), entity.AdvertisementFilter{Active: &no})
	require.NoError(t, err)
	assert.False(t, *repo.filters[len(repo.filters)-1].Active)
}

func TestFeatured(t *testing.T) {
	repo := newStub()
	svc := &advUC.Service{Repo: repo}
	_, err := svc.Featured(context.Background(), 0)
	require.NoError(t, err)
	f := repo.filters[0]
	assert.Equal(t, 6, f.Limit)
	assert.True(t, *f.Featured)
	assert.True(t, *f.Active)
}

func TestUpdate(t *testing.T) {
	svc := &advUC.Service{Repo: newStub()}
	a, _ := svc.Create(context.Background(), jobInput())

	loc := "Musanze"
	feat := true
	got, err := svc.Update(context.Background(), advUC.UpdateInput{ID: a.ID, Location: &loc, IsFeatured: &feat})
	require.NoError(t, err)
	assert.Equal(t, "Musanze", got.Location)
	assert.True(t, got.IsFeatured)
	assert.Equal(t, "Senior Reporter", got.Title)

	blank := ""
	_, err = svc.Update(context.Background(), advUC.UpdateInput{ID: a.ID, Company: &blank})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	_, err = svc.Update(context.Background(), advUC.UpdateInput{ID: 42})
	assert.ErrorIs(t, err, advUC.ErrAdvertisementNotFound)
}

func TestCounters(t *testing.T) {
	svc := &advUC.Service{Repo: newStub()}
	a, _ := svc.Create(context.Background(), jobInput())

	for i := 1; i <= 3; i++ {
		n, err := svc.View(context.Background(), a.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), n)
	}
	n, err := svc.Apply(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.View(context.Background(), 999)
	assert.ErrorIs(t, err, advUC.ErrAdvertisementNotFound)
	_, err = svc.Apply(context.Background(), -3)
	assert.ErrorIs(t, err, advUC.ErrInvalidAdvertisementID)
}

func TestDelete(t *testing.T) {
	svc := &advUC.Service{Repo: newStub()}
	a, _ := svc.Create(context.Background(), jobInput())
	require.NoError(t, svc.Delete(context.Background(), a.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), a.ID), advUC.ErrAdvertisementNotFound)
}
