package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
	"newsdesk/internal/utils/text"
)

const (
	BreakingLimit  = 5
	LatestLimit    = 10
	FeaturedLimit  = 6
	SearchLimit    = 20
	FeedLimit      = 20
	MaxListLimit   = 100
	ExcerptRunes   = 200
	createAttempts = 3
)

// maxSlugAttempts bounds the -1, -2 … suffix walk.
const maxSlugAttempts = 1000

var defaultSanitizer = text.NewSanitizer()

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title      string
	Content    string
	Excerpt    string
	ImageURL   string
	CategoryID int64
	AuthorID   *int64
	IsBreaking bool
	IsFeatured bool
	Status     entity.ArticleStatus
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID         int64
	Title      *string
	Content    *string
	Excerpt    *string
	ImageURL   *string
	CategoryID *int64
	IsBreaking *bool
	IsFeatured *bool
	Status     *entity.ArticleStatus
}

// ListResult is a page of articles plus the unpaged total.
type ListResult struct {
	Articles []*entity.Article
	Total    int64
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repositories.
type Service struct {
	Repo       repository.ArticleRepository
	Categories repository.CategoryRepository
	Comments   repository.CommentRepository
	Sanitizer  *text.Sanitizer
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) sanitize(html string) string {
	if s.Sanitizer == nil {
		return defaultSanitizer.SanitizeHTML(html)
	}
	return s.Sanitizer.SanitizeHTML(html)
}

// List returns one page of articles and the total match count.
// Both queries run concurrently.
func (s *Service) List(ctx context.Context, filter entity.ArticleFilter) (*ListResult, error) {
	if filter.Status == "" {
		filter.Status = entity.StatusPublished
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	var (
		res ListResult
		eg  errgroup.Group
	)
	eg.Go(func() error {
		n, err := s.Repo.Count(ctx, filter)
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		res.Total = n
		return nil
	})
	eg.Go(func() error {
		list, err := s.Repo.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		res.Articles = list
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

// Get counts a view, then returns the article with its approved comments.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if err := s.View(ctx, id); err != nil {
		return nil, err
	}
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Comments != nil {
		comments, err := s.Comments.ListByArticle(ctx, id, true)
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}
		a.Comments = comments
	}
	return a, nil
}

// View increments the view counter.
func (s *Service) View(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}
	if err := s.Repo.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("increment views: %w", err)
	}
	metrics.RecordArticleView()
	return nil
}

func (s *Service) find(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

func (s *Service) published(ctx context.Context, f entity.ArticleFilter) ([]*entity.Article, error) {
	f.Status = entity.StatusPublished
	list, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return list, nil
}

func limitOr(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// Breaking returns the newest published breaking articles.
func (s *Service) Breaking(ctx context.Context) ([]*entity.Article, error) {
	yes := true
	return s.published(ctx, entity.ArticleFilter{IsBreaking: &yes, Limit: BreakingLimit})
}

// Latest returns the newest published articles.
func (s *Service) Latest(ctx context.Context, limit int) ([]*entity.Article, error) {
	return s.published(ctx, entity.ArticleFilter{Limit: limitOr(limit, LatestLimit)})
}

// Featured returns the newest published featured articles.
func (s *Service) Featured(ctx context.Context, limit int) ([]*entity.Article, error) {
	yes := true
	return s.published(ctx, entity.ArticleFilter{IsFeatured: &yes, Limit: limitOr(limit, FeaturedLimit)})
}

// Feed returns the articles rendered into the RSS channel.
func (s *Service) Feed(ctx context.Context) ([]*entity.Article, error) {
	return s.published(ctx, entity.ArticleFilter{Limit: FeedLimit})
}

// Search matches q against title, content and excerpt of published articles.
func (s *Service) Search(ctx context.Context, q string, limit int) ([]*entity.Article, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	list, err := s.Repo.Search(ctx, q, limitOr(limit, SearchLimit))
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return list, nil
}

// resolveSlug returns the first free slug derived from title, ignoring excludeID.
func (s *Service) resolveSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	base := text.Slugify(title)
	if base == "" {
		base = text.DefaultSlug
	}
	for n := 0; n < maxSlugAttempts; n++ {
		candidate := text.SlugCandidate(base, n)
		exists, err := s.Repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrSlugExhausted
}

func (s *Service) ensureCategory(ctx context.Context, id int64) error {
	c, err := s.Categories.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func validateCreate(in CreateInput) error {
	fields := entity.ValidationErrors{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(in.Content) == "" {
		fields["content"] = "content is required"
	}
	if in.CategoryID <= 0 {
		fields["categoryId"] = "categoryId is required"
	}
	if in.Status != "" && !in.Status.Valid() {
		fields["status"] = "status must be draft or published"
	}
	if in.ImageURL != "" {
		if err := entity.ValidateURL("imageUrl", in.ImageURL); err != nil {
			fields["imageUrl"] = "imageUrl must be a valid http(s) URL"
		}
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// Create stores a new article. authorID is used when in.AuthorID is nil.
func (s *Service) Create(ctx context.Context, in CreateInput, authorID int64) (*entity.Article, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	content := s.sanitize(in.Content)
	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		excerpt = text.Excerpt(content, ExcerptRunes)
	}
	catID := in.CategoryID
	a := &entity.Article{
		Title:      strings.TrimSpace(in.Title),
		Content:    content,
		Excerpt:    excerpt,
		ImageURL:   in.ImageURL,
		CategoryID: &catID,
		AuthorID:   in.AuthorID,
		IsBreaking: in.IsBreaking,
		IsFeatured: in.IsFeatured,
		Status:     entity.StatusDraft,
	}
	if a.AuthorID == nil && authorID > 0 {
		a.AuthorID = &authorID
	}
	if in.Status == entity.StatusPublished {
		a.Publish(s.now())
	}

	// 競合（同時作成で slug が衝突）したら slug を取り直す
	for attempt := 1; ; attempt++ {
		slug, err := s.resolveSlug(ctx, a.Title, 0)
		if err != nil {
			return nil, err
		}
		a.Slug = slug
		err = s.Repo.Create(ctx, a)
		if err == nil {
			if a.Status == entity.StatusPublished {
				metrics.RecordArticlePublished()
			}
			return a, nil
		}
		if !errors.Is(err, entity.ErrConflict) || attempt >= createAttempts {
			return nil, fmt.Errorf("create article: %w", err)
		}
	}
}

// Update applies a partial update. A changed title regenerates the slug.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	a, err := s.find(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	fields := entity.ValidationErrors{}
	titleChanged := false
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			fields["title"] = "title cannot be empty"
		} else if t != a.Title {
			a.Title = t
			titleChanged = true
		}
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			fields["content"] = "content cannot be empty"
		} else {
			a.Content = s.sanitize(*in.Content)
		}
	}
	if in.Excerpt != nil {
		a.Excerpt = strings.TrimSpace(*in.Excerpt)
	}
	if in.ImageURL != nil {
		if *in.ImageURL != "" && entity.ValidateURL("imageUrl", *in.ImageURL) != nil {
			fields["imageUrl"] = "imageUrl must be a valid http(s) URL"
		}
		a.ImageURL = *in.ImageURL
	}
	if in.Status != nil && !in.Status.Valid() {
		fields["status"] = "status must be draft or published"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	if in.CategoryID != nil {
		if err := s.ensureCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		id := *in.CategoryID
		a.CategoryID = &id
	}
	if in.IsBreaking != nil {
		a.IsBreaking = *in.IsBreaking
	}
	if in.IsFeatured != nil {
		a.IsFeatured = *in.IsFeatured
	}
	publishing := in.Status != nil && *in.Status == entity.StatusPublished && a.Status != entity.StatusPublished
	if in.Status != nil {
		if *in.Status == entity.StatusPublished {
			a.Publish(s.now())
		} else {
			a.Status = *in.Status
		}
	}
	if a.Excerpt == "" {
		a.Excerpt = text.Excerpt(a.Content, ExcerptRunes)
	}

	for attempt := 1; ; attempt++ {
		if titleChanged {
			slug, err := s.resolveSlug(ctx, a.Title, a.ID)
			if err != nil {
				return nil, err
			}
			a.Slug = slug
		}
		err := s.Repo.Update(ctx, a)
		if err == nil {
			if publishing {
				metrics.RecordArticlePublished()
			}
			return a, nil
		}
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		if !titleChanged || !errors.Is(err, entity.ErrConflict) || attempt >= createAttempts {
			return nil, fmt.Errorf("update article: %w", err)
		}
	}
}

// Delete removes the article. Comments cascade.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
