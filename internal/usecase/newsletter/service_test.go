package newsletter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	nlUC "newsdesk/internal/usecase/newsletter"
)

/* ───────── スタブ実装 ───────── */

type stubRepo struct {
	byEmail map[string]*entity.Subscriber
	nextID  int64
}

func newStub() *stubRepo {
	return &stubRepo{byEmail: map[string]*entity.Subscriber{}, nextID: 1}
}

// ON CONFLICT (email) DO UPDATE と同じ振る舞い
func (s *stubRepo) Subscribe(_ context.Context, sub *entity.Subscriber) error {
	if old, ok := s.byEmail[sub.Email]; ok {
		old.Active = true
		old.UnsubscribedAt = nil
		if sub.Name != "" {
			old.Name = sub.Name
		}
		*sub = *old
		return nil
	}
	sub.ID = s.nextID
	s.nextID++
	cp := *sub
	s.byEmail[sub.Email] = &cp
	return nil
}
func (s *stubRepo) Unsubscribe(_ context.Context, email string) error {
	sub, ok := s.byEmail[email]
	if !ok || !sub.Active {
		return entity.ErrNotFound
	}
	now := time.Now()
	sub.Active = false
	sub.UnsubscribedAt = &now
	return nil
}
func (s *stubRepo) List(_ context.Context, active *bool) ([]*entity.Subscriber, error) {
	var out []*entity.Subscriber
	for _, sub := range s.byEmail {
		if active == nil || sub.Active == *active {
			out = append(out, sub)
		}
	}
	return out, nil
}

/* ───────── テスト本体 ───────── */

func TestSubscribeLifecycle(t *testing.T) {
	repo := newStub()
	svc := &nlUC.Service{Repo: repo}
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, " Reader@Example.com ", "Reader")
	if err != nil {
		t.Fatalf("Subscribe err=%v", err)
	}
	if sub.Email != "reader@example.com" || !sub.Active {
		t.Errorf("sub = %+v", sub)
	}

	if err := svc.Unsubscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("Unsubscribe err=%v", err)
	}
	if err := svc.Unsubscribe(ctx, "reader@example.com"); !errors.Is(err, nlUC.ErrSubscriberNotFound) {
		t.Errorf("second unsubscribe err=%v", err)
	}

	// 再購読で復活し、名前は保持される
	again, err := svc.Subscribe(ctx, "reader@example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != sub.ID || !again.Active || again.Name != "Reader" {
		t.Errorf("reactivated = %+v", again)
	}

	active := true
	list, _ := svc.List(ctx, &active)
	if len(list) != 1 {
		t.Errorf("active subscribers = %d", len(list))
	}
}

func TestSubscribe_Validation(t *testing.T) {
	svc := &nlUC.Service{Repo: newStub()}
	for _, email := range []string{"", "   ", "nope"} {
		if _, err := svc.Subscribe(context.Background(), email, ""); !errors.Is(err, entity.ErrValidationFailed) {
			t.Errorf("email %q err=%v", email, err)
		}
	}
	if err := svc.Unsubscribe(context.Background(), "ghost@example.com"); !errors.Is(err, nlUC.ErrSubscriberNotFound) {
		t.Errorf("unknown err=%v", err)
	}
}
