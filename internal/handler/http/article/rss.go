package article

import (
	"cmp"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

const (
	defaultFeedTitle       = "Newsdesk"
	defaultFeedDescription = "Latest published articles"
)

// RSSHandler renders the latest published articles as RSS 2.0.
type RSSHandler struct {
	Svc         artUC.Service
	SiteURL     string
	Title       string
	Description string
	Now         func() time.Time
}

// ServeHTTP RSS フィード
// @Summary      RSS フィード
// @Description  最新の公開済み記事 20 件を RSS 2.0 で返します
// @Tags         articles
// @Produce      xml
// @Success      200 {string} string "RSS 2.0"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles/rss [get]
func (h RSSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.Feed(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out, err := h.render(list)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (h RSSHandler) render(list []*entity.Article) ([]byte, error) {
	site := strings.TrimSuffix(cmp.Or(h.SiteURL, "http://localhost:3000"), "/")
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	feed := &feeds.Feed{
		Title:       cmp.Or(h.Title, defaultFeedTitle),
		Link:        &feeds.Link{Href: site},
		Description: cmp.Or(h.Description, defaultFeedDescription),
		Updated:     now(),
		Items:       make([]*feeds.Item, 0, len(list)),
	}
	if len(list) > 0 && list[0].PublishedAt != nil {
		feed.Updated = *list[0].PublishedAt
	}

	for _, a := range list {
		link := site + "/articles/" + a.Slug
		item := &feeds.Item{
			Title:       a.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			IsPermaLink: "true",
			Description: a.Excerpt,
		}
		if a.Content != "" && a.Content != a.Excerpt {
			item.Content = a.Content
		}
		if a.Author != nil && a.Author.Email != "" {
			item.Author = &feeds.Author{Name: a.Author.Name, Email: a.Author.Email}
		}
		if a.PublishedAt != nil {
			item.Created = *a.PublishedAt
		}
		if a.ImageURL != "" {
			item.Enclosure = &feeds.Enclosure{Url: a.ImageURL, Length: "0", Type: imageType(a.ImageURL)}
		}
		feed.Items = append(feed.Items, item)
	}

	// feeds.Item にはカテゴリが無いので RSS 側の構造体に直接入れる
	rss := (&feeds.Rss{Feed: feed}).RssFeed()
	for i, a := range list {
		if a.Category != nil {
			rss.Items[i].Category = a.Category.Name
		}
	}

	out, err := feeds.ToXML(rss)
	if err != nil {
		return nil, fmt.Errorf("render rss: %w", err)
	}
	return []byte(out), nil
}

func imageType(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
