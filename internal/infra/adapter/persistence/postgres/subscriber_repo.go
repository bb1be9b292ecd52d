package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type SubscriberRepo struct {
	db DB
}

func NewSubscriberRepo(db DB) repository.SubscriberRepository {
	return &SubscriberRepo{db: db}
}

// Subscribe inserts the address or reactivates it, keeping the first subscription's id.
func (repo *SubscriberRepo) Subscribe(ctx context.Context, sub *entity.Subscriber) error {
	const query = `
INSERT INTO newsletter_subscribers (email, name, active)
VALUES ($1, $2, TRUE)
ON CONFLICT (email) DO UPDATE
SET active = TRUE,
    unsubscribed_at = NULL,
    subscribed_at = CASE WHEN newsletter_subscribers.active THEN newsletter_subscribers.subscribed_at ELSE now() END,
    name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE newsletter_subscribers.name END
RETURNING id, name, subscribed_at`
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	err := repo.db.QueryRowContext(ctx, query, sub.Email, sub.Name).Scan(&sub.ID, &sub.Name, &sub.SubscribedAt)
	if err != nil {
		return mapError("Subscribe", err)
	}
	sub.Active = true
	sub.UnsubscribedAt = nil
	return nil
}

func (repo *SubscriberRepo) Unsubscribe(ctx context.Context, email string) error {
	const query = `
UPDATE newsletter_subscribers SET active = FALSE, unsubscribed_at = now()
WHERE email = $1 AND active`
	res, err := repo.db.ExecContext(ctx, query, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return fmt.Errorf("Unsubscribe: %w", err)
	}
	return mustAffect("Unsubscribe", res)
}

func (repo *SubscriberRepo) List(ctx context.Context, active *bool) ([]*entity.Subscriber, error) {
	w := &whereBuilder{}
	if active != nil {
		w.add("active = ?", *active)
	}
	query := `SELECT id, email, name, active, subscribed_at, unsubscribed_at FROM newsletter_subscribers` +
		w.clause() + ` ORDER BY subscribed_at DESC, id DESC`

	rows, err := repo.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subs []*entity.Subscriber
	for rows.Next() {
		var s entity.Subscriber
		var unsub sql.NullTime
		if err := rows.Scan(&s.ID, &s.Email, &s.Name, &s.Active, &s.SubscribedAt, &unsub); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		s.UnsubscribedAt = timePtr(unsub)
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
