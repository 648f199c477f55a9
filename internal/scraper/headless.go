package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// HeadlessLister discovers posting URLs from search result pages that only
// render job links client side.
type HeadlessLister struct {
	searchURL string
	limit     int
}

func NewHeadlessLister(searchURL string, limit int) *HeadlessLister {
	if limit <= 0 {
		limit = 25
	}
	return &HeadlessLister{searchURL: strings.TrimSpace(searchURL), limit: limit}
}

func (l *HeadlessLister) DiscoverJobURLs(ctx context.Context) ([]string, error) {
	if l == nil || l.searchURL == "" {
		return nil, fmt.Errorf("no search url configured")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(l.searchURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href]'))
			.map(a => a.href)
			.filter(h => h && h.includes('/jobs/view/'))`, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, l.limit)
	for _, h := range hrefs {
		if len(out) >= l.limit {
			break
		}
		h = normalizeURL(h)
		if h == "" || !IsValidJobURL(h) {
			continue
		}
		id := ExternalJobID(h)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, h)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no job urls found (headless)")
	}
	return out, nil
}
