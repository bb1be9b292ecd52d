package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// Snapshot is a full copy of the editorial tables, used for backups and environment moves.
// Password hashes are never part of a snapshot.
type Snapshot struct {
	Users          []*entity.User
	Categories     []*entity.Category
	Articles       []*entity.Article
	Ads            []*entity.Ad
	Advertisements []*entity.Advertisement
	Auctions       []*entity.Auction
}

// SnapshotRepository reads and writes whole snapshots.
type SnapshotRepository interface {
	Export(ctx context.Context) (*Snapshot, error)
	// Import upserts every row by id in one transaction and advances the id sequences.
	// Users are matched by email and keep their existing password hash.
	Import(ctx context.Context, snap *Snapshot) error
}
