package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Format is the encoding of a snapshot file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"

	snapshotVersion = 1
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", ErrUnknownFormat
}

// Document is the on-disk snapshot layout.
type Document struct {
	Version        int                `json:"version" yaml:"version"`
	ExportedAt     time.Time          `json:"exportedAt" yaml:"exported_at"`
	Users          []UserDoc          `json:"users" yaml:"users"`
	Categories     []CategoryDoc      `json:"categories" yaml:"categories"`
	Articles       []ArticleDoc       `json:"articles" yaml:"articles"`
	Ads            []AdDoc            `json:"ads" yaml:"ads"`
	Advertisements []AdvertisementDoc `json:"advertisements" yaml:"advertisements"`
	Auctions       []AuctionDoc       `json:"auctions" yaml:"auctions"`
}

type UserDoc struct {
	ID        int64     `json:"id" yaml:"id"`
	Email     string    `json:"email" yaml:"email"`
	Name      string    `json:"name" yaml:"name"`
	Role      string    `json:"role" yaml:"role"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

type CategoryDoc struct {
	ID           int64     `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	NameRw       string    `json:"nameRw" yaml:"name_rw"`
	Slug         string    `json:"slug" yaml:"slug"`
	Description  string    `json:"description" yaml:"description"`
	Icon         string    `json:"icon" yaml:"icon"`
	DisplayOrder int       `json:"displayOrder" yaml:"display_order"`
	Active       bool      `json:"active" yaml:"active"`
	CreatedAt    time.Time `json:"createdAt" yaml:"created_at"`
}

type ArticleDoc struct {
	ID          int64      `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Slug        string     `json:"slug" yaml:"slug"`
	Excerpt     string     `json:"excerpt" yaml:"excerpt"`
	Content     string     `json:"content" yaml:"content"`
	ImageURL    string     `json:"imageUrl" yaml:"image_url"`
	CategoryID  *int64     `json:"categoryId" yaml:"category_id"`
	AuthorID    *int64     `json:"authorId" yaml:"author_id"`
	IsBreaking  bool       `json:"isBreaking" yaml:"is_breaking"`
	IsFeatured  bool       `json:"isFeatured" yaml:"is_featured"`
	Status      string     `json:"status" yaml:"status"`
	PublishedAt *time.Time `json:"publishedAt" yaml:"published_at"`
	Views       int64      `json:"views" yaml:"views"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at"`
}

type AdDoc struct {
	ID          int64      `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	ImageURL    string     `json:"imageUrl" yaml:"image_url"`
	LinkURL     string     `json:"linkUrl" yaml:"link_url"`
	Position    string     `json:"position" yaml:"position"`
	IsActive    bool       `json:"isActive" yaml:"is_active"`
	StartDate   *time.Time `json:"startDate" yaml:"start_date"`
	EndDate     *time.Time `json:"endDate" yaml:"end_date"`
	CreatedBy   *int64     `json:"createdBy" yaml:"created_by"`
	Clicks      int64      `json:"clicks" yaml:"clicks"`
	Impressions int64      `json:"impressions" yaml:"impressions"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at"`
}

type AdvertisementDoc struct {
	ID              int64      `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	FullDescription string     `json:"fullDescription" yaml:"full_description"`
	Company         string     `json:"company" yaml:"company"`
	Category        string     `json:"category" yaml:"category"`
	ImageURL        string     `json:"imageUrl" yaml:"image_url"`
	Location        string     `json:"location" yaml:"location"`
	Deadline        *time.Time `json:"deadline" yaml:"deadline"`
	ContactPhone    string     `json:"contactPhone" yaml:"contact_phone"`
	ContactEmail    string     `json:"contactEmail" yaml:"contact_email"`
	ContactWebsite  string     `json:"contactWebsite" yaml:"contact_website"`
	ContactAddress  string     `json:"contactAddress" yaml:"contact_address"`
	Requirements    []string   `json:"requirements" yaml:"requirements"`
	Benefits        []string   `json:"benefits" yaml:"benefits"`
	IsActive        bool       `json:"isActive" yaml:"is_active"`
	IsFeatured      bool       `json:"isFeatured" yaml:"is_featured"`
	Views           int64      `json:"views" yaml:"views"`
	Applicants      int64      `json:"applicants" yaml:"applicants"`
	CreatedAt       time.Time  `json:"createdAt" yaml:"created_at"`
}

type AuctionDoc struct {
	ID              int64     `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	FullDescription string    `json:"fullDescription" yaml:"full_description"`
	StartingBid     float64   `json:"startingBid" yaml:"starting_bid"`
	CurrentBid      float64   `json:"currentBid" yaml:"current_bid"`
	MinIncrement    float64   `json:"minIncrement" yaml:"min_increment"`
	EndTime         time.Time `json:"endTime" yaml:"end_time"`
	Images          []string  `json:"images" yaml:"images"`
	Category        string    `json:"category" yaml:"category"`
	Condition       string    `json:"condition" yaml:"condition"`
	Location        string    `json:"location" yaml:"location"`
	Shipping        string    `json:"shipping" yaml:"shipping"`
	Returns         string    `json:"returns" yaml:"returns"`
	SellerID        *int64    `json:"sellerId" yaml:"seller_id"`
	IsFeatured      bool      `json:"isFeatured" yaml:"is_featured"`
	Status          string    `json:"status" yaml:"status"`
	TotalBids       int64     `json:"totalBids" yaml:"total_bids"`
	CreatedAt       time.Time `json:"createdAt" yaml:"created_at"`
}

func toDocument(snap *repository.Snapshot, now time.Time) *Document {
	doc := &Document{Version: snapshotVersion, ExportedAt: now.UTC()}
	for _, u := range snap.Users {
		doc.Users = append(doc.Users, UserDoc{
			ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role), CreatedAt: u.CreatedAt,
		})
	}
	for _, c := range snap.Categories {
		doc.Categories = append(doc.Categories, CategoryDoc{
			ID: c.ID, Name: c.Name, NameRw: c.NameRw, Slug: c.Slug, Description: c.Description,
			Icon: c.Icon, DisplayOrder: c.DisplayOrder, Active: c.Active, CreatedAt: c.CreatedAt,
		})
	}
	for _, a := range snap.Articles {
		doc.Articles = append(doc.Articles, ArticleDoc{
			ID: a.ID, Title: a.Title, Slug: a.Slug, Excerpt: a.Excerpt, Content: a.Content,
			ImageURL: a.ImageURL, CategoryID: a.CategoryID, AuthorID: a.AuthorID,
			IsBreaking: a.IsBreaking, IsFeatured: a.IsFeatured, Status: string(a.Status),
			PublishedAt: a.PublishedAt, Views: a.Views, CreatedAt: a.CreatedAt,
		})
	}
	for _, a := range snap.Ads {
		doc.Ads = append(doc.Ads, AdDoc{
			ID: a.ID, Title: a.Title, ImageURL: a.ImageURL, LinkURL: a.LinkURL, Position: string(a.Position),
			IsActive: a.IsActive, StartDate: a.StartDate, EndDate: a.EndDate, CreatedBy: a.CreatedBy,
			Clicks: a.Clicks, Impressions: a.Impressions, CreatedAt: a.CreatedAt,
		})
	}
	for _, a := range snap.Advertisements {
		doc.Advertisements = append(doc.Advertisements, AdvertisementDoc{
			ID: a.ID, Title: a.Title, FullDescription: a.FullDescription, Company: a.Company,
			Category: a.Category, ImageURL: a.ImageURL, Location: a.Location, Deadline: a.Deadline,
			ContactPhone: a.ContactPhone, ContactEmail: a.ContactEmail, ContactWebsite: a.ContactWebsite,
			ContactAddress: a.ContactAddress, Requirements: a.Requirements, Benefits: a.Benefits,
			IsActive: a.IsActive, IsFeatured: a.IsFeatured, Views: a.Views, Applicants: a.Applicants,
			CreatedAt: a.CreatedAt,
		})
	}
	for _, a := range snap.Auctions {
		doc.Auctions = append(doc.Auctions, AuctionDoc{
			ID: a.ID, Title: a.Title, FullDescription: a.FullDescription, StartingBid: a.StartingBid,
			CurrentBid: a.CurrentBid, MinIncrement: a.MinIncrement, EndTime: a.EndTime, Images: a.Images,
			Category: a.Category, Condition: a.Condition, Location: a.Location, Shipping: a.Shipping,
			Returns: a.Returns, SellerID: a.SellerID, IsFeatured: a.IsFeatured, Status: string(a.Status),
			TotalBids: a.TotalBids, CreatedAt: a.CreatedAt,
		})
	}
	return doc
}

func (d *Document) toSnapshot() (*repository.Snapshot, error) {
	snap := &repository.Snapshot{}
	for _, u := range d.Users {
		role := entity.Role(u.Role)
		if role == "" {
			role = entity.RoleAdmin
		}
		if !role.Valid() {
			return nil, fmt.Errorf("user %d: %w", u.ID, entity.FieldError("role", "role must be admin, editor or author"))
		}
		snap.Users = append(snap.Users, &entity.User{
			ID: u.ID, Email: strings.ToLower(u.Email), Name: u.Name, Role: role, CreatedAt: u.CreatedAt,
		})
	}
	for _, c := range d.Categories {
		snap.Categories = append(snap.Categories, &entity.Category{
			ID: c.ID, Name: c.Name, NameRw: c.NameRw, Slug: c.Slug, Description: c.Description,
			Icon: c.Icon, DisplayOrder: c.DisplayOrder, Active: c.Active, CreatedAt: c.CreatedAt,
		})
	}
	for _, a := range d.Articles {
		status := entity.ArticleStatus(a.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("article %d: %w", a.ID, entity.FieldError("status", "status must be draft or published"))
		}
		snap.Articles = append(snap.Articles, &entity.Article{
			ID: a.ID, Title: a.Title, Slug: a.Slug, Excerpt: a.Excerpt, Content: a.Content,
			ImageURL: a.ImageURL, CategoryID: a.CategoryID, AuthorID: a.AuthorID,
			IsBreaking: a.IsBreaking, IsFeatured: a.IsFeatured, Status: status,
			PublishedAt: a.PublishedAt, Views: a.Views, CreatedAt: a.CreatedAt,
		})
	}
	for _, a := range d.Ads {
		pos := entity.AdPosition(a.Position)
		if !pos.Valid() {
			return nil, fmt.Errorf("ad %d: %w", a.ID, entity.FieldError("position", "position is invalid"))
		}
		snap.Ads = append(snap.Ads, &entity.Ad{
			ID: a.ID, Title: a.Title, ImageURL: a.ImageURL, LinkURL: a.LinkURL, Position: pos,
			IsActive: a.IsActive, StartDate: a.StartDate, EndDate: a.EndDate, CreatedBy: a.CreatedBy,
			Clicks: a.Clicks, Impressions: a.Impressions, CreatedAt: a.CreatedAt,
		})
	}
	for _, a := range d.Advertisements {
		snap.Advertisements = append(snap.Advertisements, &entity.Advertisement{
			ID: a.ID, Title: a.Title, FullDescription: a.FullDescription, Company: a.Company,
			Category: a.Category, ImageURL: a.ImageURL, Location: a.Location, Deadline: a.Deadline,
			ContactPhone: a.ContactPhone, ContactEmail: a.ContactEmail, ContactWebsite: a.ContactWebsite,
			ContactAddress: a.ContactAddress, Requirements: a.Requirements, Benefits: a.Benefits,
			IsActive: a.IsActive, IsFeatured: a.IsFeatured, Views: a.Views, Applicants: a.Applicants,
			CreatedAt: a.CreatedAt,
		})
	}
	for _, a := range d.Auctions {
		status := entity.AuctionStatus(a.Status)
		if status != entity.AuctionActive && status != entity.AuctionEnded {
			return nil, fmt.Errorf("auction %d: %w", a.ID, entity.FieldError("status", "status must be active or ended"))
		}
		snap.Auctions = append(snap.Auctions, &entity.Auction{
			ID: a.ID, Title: a.Title, FullDescription: a.FullDescription, StartingBid: a.StartingBid,
			CurrentBid: a.CurrentBid, MinIncrement: a.MinIncrement, EndTime: a.EndTime, Images: a.Images,
			Category: a.Category, Condition: a.Condition, Location: a.Location, Shipping: a.Shipping,
			Returns: a.Returns, SellerID: a.SellerID, IsFeatured: a.IsFeatured, Status: status,
			TotalBids: a.TotalBids, CreatedAt: a.CreatedAt,
		})
	}
	return snap, nil
}

// Export writes the whole content set to w. Password hashes are never included.
func (s *Service) Export(ctx context.Context, w io.Writer, format Format) (*Document, error) {
	snap, err := s.Snapshots.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	doc := toDocument(snap, time.Now())

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	s.logger().Info("snapshot exported",
		slog.String("format", string(format)),
		slog.Int("users", len(doc.Users)),
		slog.Int("articles", len(doc.Articles)),
		slog.Int("auctions", len(doc.Auctions)))
	return doc, nil
}

// Import upserts a snapshot read from r in one transaction.
func (s *Service) Import(ctx context.Context, r io.Reader, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version > snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", doc.Version, snapshotVersion)
	}

	snap, err := doc.toSnapshot()
	if err != nil {
		return nil, err
	}
	if err := s.Snapshots.Import(ctx, snap); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	s.logger().Info("snapshot imported",
		slog.String("format", string(format)),
		slog.Int("users", len(doc.Users)),
		slog.Int("articles", len(doc.Articles)),
		slog.Int("auctions", len(doc.Auctions)))
	return &doc, nil
}
