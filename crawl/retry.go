package crawl

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/locrecipe"
)

// FetchFunc downloads one page.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryNotice is called before a page is fetched again. attempt counts
// from 1 for the first fetch.
type RetryNotice func(url string, attempt int, err error)

// Backoff lists the pauses between fetch attempts. A page is fetched once,
// then once more after each pause. An empty Backoff never retries.
type Backoff []time.Duration

// DefaultBackoff retries three times after 1s, 2s and 4s.
var DefaultBackoff = ExponentialBackoff(time.Second, 3)

// ExponentialBackoff returns retries pauses, starting at base and doubling.
func ExponentialBackoff(base time.Duration, retries int) Backoff {
	b := make(Backoff, max(retries, 0))
	for i := range b {
		b[i] = base << i
	}
	return b
}

// Fetch calls fetch until it succeeds, returns an error that retrying
// cannot fix, or the pauses are used up. The last error is returned.
func (b Backoff) Fetch(ctx context.Context, url string, fetch FetchFunc, notice RetryNotice) (string, error) {
	html, err := fetch(ctx, url)
	for i, pause := range b {
		if err == nil || !retryable(err) {
			break
		}
		if notice != nil {
			notice(url, i+2, err)
		}

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}

		html, err = fetch(ctx, url)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

// Missing pages, malformed URLs and cancellation fail the same way every time.
func retryable(err error) bool {
	switch locrecipe.ErrorCode(err) {
	case locrecipe.ENOTFOUND, locrecipe.EINVALID:
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
