package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gocolly/colly/v2"

	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

const (
	// summaryLimit bounds the processed summary persisted with each page.
	summaryLimit = 1500

	// rawLimit bounds the raw markdown kept on the evidence row; the full
	// page body is never persisted.
	rawLimit = 8000
)

// WebCrawler collects webpage evidence from the target company's site.
// Two registered instances share this type: a shallow homepage crawl for
// stage 1 and a deeper site crawl for stage 2.
type WebCrawler struct {
	name     string
	maxDepth int
	maxPages int
	timeout  time.Duration
	caps     []Capability
}

// NewShallowCrawler returns the stage-1 crawler: homepage plus directly
// linked pages.
func NewShallowCrawler() *WebCrawler {
	return &WebCrawler{
		name:     "web-crawler",
		maxDepth: 1,
		maxPages: 10,
		timeout:  45 * time.Second,
		caps:     []Capability{CapWeb},
	}
}

// NewDeepCrawler returns the stage-2 crawler.
func NewDeepCrawler() *WebCrawler {
	return &WebCrawler{
		name:     "deep-crawler",
		maxDepth: 3,
		maxPages: 50,
		timeout:  4 * time.Minute,
		caps:     []Capability{CapWeb},
	}
}

func (w *WebCrawler) Name() string               { return w.name }
func (w *WebCrawler) Capabilities() []Capability { return w.caps }
func (w *WebCrawler) Cost() float64              { return float64(w.maxPages) * 0.1 }
func (w *WebCrawler) SuggestedTimeout() time.Duration {
	return w.timeout
}
func (w *WebCrawler) MaxConcurrency() int { return 2 }

// Collect crawls the company website breadth-first up to maxDepth/maxPages
// and emits one webpage evidence item per page. Pages that fail to convert
// are skipped; a partially crawled site is still useful, so partialOk is
// true whenever at least one page was captured.
func (w *WebCrawler) Collect(ctx context.Context, in Input) ([]models.EvidenceItem, bool, error) {
	site, err := url.Parse(in.Company.Website)
	if err != nil || site.Host == "" {
		return nil, false, errkind.Newf(errkind.InvalidInput, "invalid website %q", in.Company.Website)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(site.Host, strings.TrimPrefix(site.Host, "www.")),
		colly.MaxDepth(w.maxDepth),
		colly.Async(true),
	)
	c.SetRequestTimeout(15 * time.Second)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 4})

	var (
		mu       sync.Mutex
		items    []models.EvidenceItem
		pages    int
		crawlErr error
	)

	c.OnRequest(func(r *colly.Request) {
		mu.Lock()
		full := pages >= w.maxPages
		mu.Unlock()
		if full || ctx.Err() != nil {
			r.Abort()
		}
	})

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		_ = e.Request.Visit(e.Attr("href"))
	})

	c.OnHTML("html", func(e *colly.HTMLElement) {
		markdown, convErr := htmltomarkdown.ConvertString(string(e.Response.Body))
		if convErr != nil {
			return
		}
		title := strings.TrimSpace(e.DOM.Find("title").First().Text())
		pageURL := e.Request.URL.String()

		mu.Lock()
		defer mu.Unlock()
		if pages >= w.maxPages {
			return
		}
		pages++
		items = append(items, models.EvidenceItem{
			ScanID:   in.ScanID,
			Category: models.CategoryGeneral,
			Type:     models.TypeWebpage,
			Title:    title,
			Raw:      truncate(markdown, rawLimit),
			Summary:  truncate(markdown, summaryLimit),
			Source: models.SourceDescriptor{
				Kind:        "web-crawl",
				URL:         pageURL,
				Tool:        w.name,
				CollectedAt: time.Now().UTC(),
			},
			Confidence:      pageConfidence(site, pageURL),
			Relevance:       0.6,
			ProcessingTrail: []string{"crawl", "html-to-markdown"},
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		mu.Lock()
		defer mu.Unlock()
		if crawlErr == nil {
			crawlErr = err
		}
	})

	if err := c.Visit(site.String()); err != nil {
		return nil, false, errkind.New(errkind.TransientNetwork, fmt.Errorf("visiting %s: %w", site, err))
	}
	c.Wait()

	if err := ctx.Err(); err != nil {
		return items, len(items) > 0, err
	}
	if len(items) == 0 {
		if crawlErr != nil {
			return nil, false, errkind.New(errkind.TransientNetwork, crawlErr)
		}
		return nil, false, errkind.Newf(errkind.UpstreamMalformed, "no crawlable pages at %s", site)
	}
	return items, true, nil
}

// pageConfidence rates the homepage slightly above interior pages.
func pageConfidence(site *url.URL, pageURL string) float64 {
	u, err := url.Parse(pageURL)
	if err == nil && (u.Path == "" || u.Path == "/") && u.Host == site.Host {
		return 0.75
	}
	return 0.7
}

// truncate cuts s to at most n bytes without splitting a rune, so the
// result stays valid UTF-8 for the text columns it lands in.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
