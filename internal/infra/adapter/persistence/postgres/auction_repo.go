package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type AuctionRepo struct {
	db DB
}

func NewAuctionRepo(db DB) repository.AuctionRepository {
	return &AuctionRepo{db: db}
}

const auctionColumns = `
id, title, full_description, starting_bid, current_bid, min_increment, end_time, images,
category, condition, location, shipping, returns, seller_id, is_featured, status, total_bids,
created_at, updated_at`

const auctionSelect = `SELECT` + auctionColumns + ` FROM auctions`

func scanAuction(s scanner) (*entity.Auction, error) {
	var (
		a         entity.Auction
		sellerID  sql.NullInt64
		updatedAt sql.NullTime
	)
	err := s.Scan(&a.ID, &a.Title, &a.FullDescription, &a.StartingBid, &a.CurrentBid, &a.MinIncrement,
		&a.EndTime, pq.Array(&a.Images), &a.Category, &a.Condition, &a.Location, &a.Shipping, &a.Returns,
		&sellerID, &a.IsFeatured, (*string)(&a.Status), &a.TotalBids, &a.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	a.SellerID = int64Ptr(sellerID)
	a.UpdatedAt = timePtr(updatedAt)
	return &a, nil
}

func (repo *AuctionRepo) List(ctx context.Context, filter entity.AuctionFilter) ([]*entity.Auction, error) {
	w := &whereBuilder{}
	if filter.Status != "" {
		w.add("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}
	query := auctionSelect + w.clause() + ` ORDER BY end_time ASC, id ASC`
	if filter.Limit > 0 {
		query += " LIMIT " + w.arg(filter.Limit)
	}

	rows, err := repo.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	auctions := make([]*entity.Auction, 0, 16)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		auctions = append(auctions, a)
	}
	return auctions, rows.Err()
}

func (repo *AuctionRepo) Get(ctx context.Context, id int64) (*entity.Auction, error) {
	a, err := scanAuction(repo.db.QueryRowContext(ctx, auctionSelect+` WHERE id = $1 LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *AuctionRepo) RecentBids(ctx context.Context, auctionID int64, limit int) ([]*entity.Bid, error) {
	const query = `
SELECT id, auction_id, user_id, amount, bid_time
FROM bids
WHERE auction_id = $1
ORDER BY bid_time DESC, id DESC
LIMIT $2`
	rows, err := repo.db.QueryContext(ctx, query, auctionID, limit)
	if err != nil {
		return nil, fmt.Errorf("RecentBids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	bids := make([]*entity.Bid, 0, limit)
	for rows.Next() {
		var b entity.Bid
		if err := rows.Scan(&b.ID, &b.AuctionID, &b.UserID, &b.Amount, &b.BidTime); err != nil {
			return nil, fmt.Errorf("RecentBids: Scan: %w", err)
		}
		bids = append(bids, &b)
	}
	return bids, rows.Err()
}

func (repo *AuctionRepo) Create(ctx context.Context, a *entity.Auction) error {
	const query = `
INSERT INTO auctions
    (title, full_description, starting_bid, current_bid, min_increment, end_time, images,
     category, condition, location, shipping, returns, seller_id, is_featured, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		a.Title, a.FullDescription, a.StartingBid, a.CurrentBid, a.MinIncrement, a.EndTime,
		pq.Array(nonNil(a.Images)), a.Category, a.Condition, a.Location, a.Shipping, a.Returns,
		nullInt64(a.SellerID), a.IsFeatured, string(a.Status),
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return mapError("Create", err)
	}
	return nil
}

// Update rewrites the descriptive fields. Bidding state (current_bid, total_bids) is only
// changed by PlaceBid.
func (repo *AuctionRepo) Update(ctx context.Context, a *entity.Auction) error {
	const query = `
UPDATE auctions
SET title = $1, full_description = $2, min_increment = $3, end_time = $4, images = $5,
    category = $6, condition = $7, location = $8, shipping = $9, returns = $10,
    is_featured = $11, status = $12, updated_at = now()
WHERE id = $13`
	res, err := repo.db.ExecContext(ctx, query,
		a.Title, a.FullDescription, a.MinIncrement, a.EndTime, pq.Array(nonNil(a.Images)),
		a.Category, a.Condition, a.Location, a.Shipping, a.Returns,
		a.IsFeatured, string(a.Status), a.ID)
	if err != nil {
		return mapError("Update", err)
	}
	return mustAffect("Update", res)
}

func (repo *AuctionRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM auctions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return mustAffect("Delete", res)
}

func (repo *AuctionRepo) PlaceBid(ctx context.Context, bid *entity.Bid, check repository.BidFunc) (err error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("PlaceBid: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 同時入札を直列化するため行ロックを取る
	a, err := scanAuction(tx.QueryRowContext(ctx, `SELECT`+auctionColumns+` FROM auctions WHERE id = $1 FOR UPDATE`, bid.AuctionID))
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("PlaceBid: %w", entity.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("PlaceBid: lock: %w", err)
	}

	if err = check(a); err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO bids (auction_id, user_id, amount, bid_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		bid.AuctionID, bid.UserID, bid.Amount, bid.BidTime,
	).Scan(&bid.ID)
	if err != nil {
		return mapError("PlaceBid: insert", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE auctions SET current_bid = $1, total_bids = total_bids + 1, updated_at = now() WHERE id = $2`,
		bid.Amount, bid.AuctionID)
	if err != nil {
		return fmt.Errorf("PlaceBid: update: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("PlaceBid: commit: %w", err)
	}
	return nil
}

func (repo *AuctionRepo) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `
UPDATE auctions SET status = 'ended', updated_at = now()
WHERE status = 'active' AND end_time <= $1`
	res, err := repo.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("CloseExpired: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("CloseExpired: RowsAffected: %w", err)
	}
	return n, nil
}

// DeleteAll removes every auction; bids go with them through ON DELETE CASCADE.
func (repo *AuctionRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM auctions`)
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: RowsAffected: %w", err)
	}
	return n, nil
}
