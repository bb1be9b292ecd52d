package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordArticleCounters(t *testing.T) {
	published := testutil.ToFloat64(ArticlesPublishedTotal)
	views := testutil.ToFloat64(ArticleViewsTotal)

	RecordArticlePublished()
	RecordArticleView()
	RecordArticleView()

	assert.Equal(t, published+1, testutil.ToFloat64(ArticlesPublishedTotal))
	assert.Equal(t, views+2, testutil.ToFloat64(ArticleViewsTotal))
}

func TestUpdateArticlesTotal(t *testing.T) {
	UpdateArticlesTotal(map[string]int64{"draft": 3, "published": 12})
	assert.Equal(t, 3.0, testutil.ToFloat64(ArticlesTotal.WithLabelValues("draft")))
	assert.Equal(t, 12.0, testutil.ToFloat64(ArticlesTotal.WithLabelValues("published")))

	// 前回の値は消える
	UpdateArticlesTotal(map[string]int64{"published": 1})
	assert.Equal(t, 1, testutil.CollectAndCount(ArticlesTotal))
}

func TestRecordLabelledEvents(t *testing.T) {
	AdEventsTotal.Reset()
	AdvertisementEventsTotal.Reset()
	BidsTotal.Reset()
	NewsletterEventsTotal.Reset()

	RecordAdEvent("click")
	RecordAdEvent("impression")
	RecordAdEvent("impression")
	RecordAdvertisementEvent("apply")
	RecordBid("accepted")
	RecordBid("too_low")
	RecordNewsletter("subscribe")

	assert.Equal(t, 1.0, testutil.ToFloat64(AdEventsTotal.WithLabelValues("click")))
	assert.Equal(t, 2.0, testutil.ToFloat64(AdEventsTotal.WithLabelValues("impression")))
	assert.Equal(t, 1.0, testutil.ToFloat64(AdvertisementEventsTotal.WithLabelValues("apply")))
	assert.Equal(t, 1.0, testutil.ToFloat64(BidsTotal.WithLabelValues("too_low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(NewsletterEventsTotal.WithLabelValues("subscribe")))
}

func TestRecordAuctionClose(t *testing.T) {
	before := testutil.ToFloat64(AuctionsClosedTotal)

	RecordAuctionClose(3, 20*time.Millisecond)
	RecordAuctionClose(0, time.Millisecond)

	assert.Equal(t, before+3, testutil.ToFloat64(AuctionsClosedTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(AuctionCloseDuration))
}

func TestDBMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordDBQuery("article_list", 5*time.Millisecond)
	})
	UpdateDBConnectionStats(4, 6)
	assert.Equal(t, 4.0, testutil.ToFloat64(DBConnectionsActive))
	assert.Equal(t, 6.0, testutil.ToFloat64(DBConnectionsIdle))
}
