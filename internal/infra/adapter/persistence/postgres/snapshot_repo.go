package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"newsdesk/internal/repository"
)

// lockedPasswordHash is not a valid bcrypt hash, so imported accounts cannot sign in
// until an administrator sets a password.
const lockedPasswordHash = "!"

type SnapshotRepo struct {
	db DB
}

func NewSnapshotRepo(db DB) repository.SnapshotRepository {
	return &SnapshotRepo{db: db}
}

func collect[T any](ctx context.Context, db DB, op, query string, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (repo *SnapshotRepo) Export(ctx context.Context) (*repository.Snapshot, error) {
	var (
		snap repository.Snapshot
		err  error
	)
	if snap.Users, err = collect(ctx, repo.db, "Export users", userSelect+` ORDER BY id`, scanUser); err != nil {
		return nil, err
	}
	for _, u := range snap.Users {
		u.PasswordHash = ""
	}
	if snap.Categories, err = collect(ctx, repo.db, "Export categories", categorySelect+` ORDER BY id`, scanCategory); err != nil {
		return nil, err
	}
	if snap.Articles, err = collect(ctx, repo.db, "Export articles", articleSelect+` ORDER BY a.id`, scanArticle); err != nil {
		return nil, err
	}
	for _, a := range snap.Articles {
		a.Category, a.Author = nil, nil
	}
	if snap.Ads, err = collect(ctx, repo.db, "Export ads", adSelect+` ORDER BY id`, scanAd); err != nil {
		return nil, err
	}
	if snap.Advertisements, err = collect(ctx, repo.db, "Export advertisements", advertisementSelect+` ORDER BY id`, scanAdvertisement); err != nil {
		return nil, err
	}
	if snap.Auctions, err = collect(ctx, repo.db, "Export auctions", auctionSelect+` ORDER BY id`, scanAuction); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (repo *SnapshotRepo) Import(ctx context.Context, snap *repository.Snapshot) (err error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Import: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// スナップショット内のユーザーIDを既存IDへ対応付ける
	userIDs := make(map[int64]int64, len(snap.Users))
	for _, u := range snap.Users {
		var id int64
		err = tx.QueryRowContext(ctx, `
INSERT INTO users (email, password_hash, name, role, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role, updated_at = now()
RETURNING id`,
			u.Email, lockedPasswordHash, u.Name, string(u.Role), u.CreatedAt,
		).Scan(&id)
		if err != nil {
			return mapError("Import users", err)
		}
		userIDs[u.ID] = id
	}
	remap := func(p *int64) interface{} {
		if p == nil {
			return nil
		}
		if id, ok := userIDs[*p]; ok {
			return id
		}
		return nil
	}

	for _, c := range snap.Categories {
		_, err = tx.ExecContext(ctx, `
INSERT INTO categories (id, name, name_rw, slug, description, icon, display_order, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name, name_rw = EXCLUDED.name_rw, slug = EXCLUDED.slug,
    description = EXCLUDED.description, icon = EXCLUDED.icon,
    display_order = EXCLUDED.display_order, active = EXCLUDED.active`,
			c.ID, c.Name, c.NameRw, c.Slug, c.Description, c.Icon, c.DisplayOrder, c.Active, c.CreatedAt)
		if err != nil {
			return mapError("Import categories", err)
		}
	}

	for _, a := range snap.Articles {
		_, err = tx.ExecContext(ctx, `
INSERT INTO articles
    (id, title, slug, excerpt, content, image_url, category_id, author_id,
     is_breaking, is_featured, status, published_at, views, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title, slug = EXCLUDED.slug, excerpt = EXCLUDED.excerpt,
    content = EXCLUDED.content, image_url = EXCLUDED.image_url,
    category_id = EXCLUDED.category_id, author_id = EXCLUDED.author_id,
    is_breaking = EXCLUDED.is_breaking, is_featured = EXCLUDED.is_featured,
    status = EXCLUDED.status, published_at = EXCLUDED.published_at,
    views = EXCLUDED.views, updated_at = EXCLUDED.updated_at`,
			a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.ImageURL, nullInt64(a.CategoryID), remap(a.AuthorID),
			a.IsBreaking, a.IsFeatured, string(a.Status), a.PublishedAt, a.Views, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			return mapError("Import articles", err)
		}
	}

	for _, ad := range snap.Ads {
		_, err = tx.ExecContext(ctx, `
INSERT INTO ads
    (id, title, image_url, link_url, position, is_active, start_date, end_date,
     created_by, clicks, impressions, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title, image_url = EXCLUDED.image_url, link_url = EXCLUDED.link_url,
    position = EXCLUDED.position, is_active = EXCLUDED.is_active,
    start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
    clicks = EXCLUDED.clicks, impressions = EXCLUDED.impressions, updated_at = EXCLUDED.updated_at`,
			ad.ID, ad.Title, ad.ImageURL, ad.LinkURL, string(ad.Position), ad.IsActive, ad.StartDate, ad.EndDate,
			remap(ad.CreatedBy), ad.Clicks, ad.Impressions, ad.CreatedAt, ad.UpdatedAt)
		if err != nil {
			return mapError("Import ads", err)
		}
	}

	for _, ad := range snap.Advertisements {
		_, err = tx.ExecContext(ctx, `
INSERT INTO advertisements
    (id, title, full_description, company, category, image_url, location, deadline,
     contact_phone, contact_email, contact_website, contact_address, requirements, benefits,
     is_active, is_featured, views, applicants, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title, full_description = EXCLUDED.full_description, company = EXCLUDED.company,
    category = EXCLUDED.category, image_url = EXCLUDED.image_url, location = EXCLUDED.location,
    deadline = EXCLUDED.deadline, contact_phone = EXCLUDED.contact_phone,
    contact_email = EXCLUDED.contact_email, contact_website = EXCLUDED.contact_website,
    contact_address = EXCLUDED.contact_address, requirements = EXCLUDED.requirements,
    benefits = EXCLUDED.benefits, is_active = EXCLUDED.is_active, is_featured = EXCLUDED.is_featured,
    views = EXCLUDED.views, applicants = EXCLUDED.applicants, updated_at = EXCLUDED.updated_at`,
			ad.ID, ad.Title, ad.FullDescription, ad.Company, ad.Category, ad.ImageURL, ad.Location, ad.Deadline,
			ad.ContactPhone, ad.ContactEmail, ad.ContactWebsite, ad.ContactAddress,
			pq.Array(nonNil(ad.Requirements)), pq.Array(nonNil(ad.Benefits)),
			ad.IsActive, ad.IsFeatured, ad.Views, ad.Applicants, ad.CreatedAt, ad.UpdatedAt)
		if err != nil {
			return mapError("Import advertisements", err)
		}
	}

	for _, a := range snap.Auctions {
		_, err = tx.ExecContext(ctx, `
INSERT INTO auctions
    (id, title, full_description, starting_bid, current_bid, min_increment, end_time, images,
     category, condition, location, shipping, returns, seller_id, is_featured, status, total_bids,
     created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title, full_description = EXCLUDED.full_description,
    starting_bid = EXCLUDED.starting_bid, current_bid = EXCLUDED.current_bid,
    min_increment = EXCLUDED.min_increment, end_time = EXCLUDED.end_time, images = EXCLUDED.images,
    category = EXCLUDED.category, condition = EXCLUDED.condition, location = EXCLUDED.location,
    shipping = EXCLUDED.shipping, returns = EXCLUDED.returns, seller_id = EXCLUDED.seller_id,
    is_featured = EXCLUDED.is_featured, status = EXCLUDED.status, total_bids = EXCLUDED.total_bids,
    updated_at = EXCLUDED.updated_at`,
			a.ID, a.Title, a.FullDescription, a.StartingBid, a.CurrentBid, a.MinIncrement, a.EndTime,
			pq.Array(nonNil(a.Images)), a.Category, a.Condition, a.Location, a.Shipping, a.Returns,
			remap(a.SellerID), a.IsFeatured, string(a.Status), a.TotalBids, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			return mapError("Import auctions", err)
		}
	}

	for _, table := range []string{"categories", "articles", "ads", "advertisements", "auctions"} {
		_, err = tx.ExecContext(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`, table))
		if err != nil {
			return fmt.Errorf("Import: sequence %s: %w", table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("Import: commit: %w", err)
	}
	return nil
}
