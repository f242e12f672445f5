package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// restarted. Chrome memory use grows with every page and never returns to
// its baseline.
const DefaultMaxPages = 75

// browser owns a headless Chrome process and restarts it every maxPages
// pages. It is safe for concurrent use.
type browser struct {
	mu       sync.Mutex
	current  *rod.Browser
	launcher *launcher.Launcher
	maxPages int64
	pages    atomic.Int64
	closed   atomic.Bool
}

func newBrowser(maxPages int64) (*browser, error) {
	b := &browser{maxPages: maxPages}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// get returns the running browser, restarting it first when the page
// budget is spent.
func (b *browser) get() *rod.Browser {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pages.Load() >= b.maxPages {
		b.restart()
	}
	return b.current
}

// rendered counts a page toward the restart budget.
func (b *browser) rendered() {
	b.pages.Add(1)
}

func (b *browser) close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdown()
}

func (b *browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	current := rod.New().ControlURL(u)
	if err := current.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.current = current
	b.launcher = l
	return nil
}

// shutdown must be called with mu held.
func (b *browser) shutdown() error {
	var err error
	if b.current != nil {
		err = b.current.Close()
		b.current = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// restart keeps the old browser when a new one cannot be launched.
// Must be called with mu held.
func (b *browser) restart() {
	oldBrowser, oldLauncher := b.current, b.launcher
	if err := b.launch(); err != nil {
		b.current, b.launcher = oldBrowser, oldLauncher
		return
	}
	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	b.pages.Store(0)
}
