package nav

import (
	"context"
	"log/slog"
	"time"
)

// DefaultNotFound is shown when a page cannot be fetched.
const DefaultNotFound = "<p>Page not found.</p>"

// Options configures a Controller.
type Options struct {
	Source      Source
	Home        string   // page name served from HomeContent
	HomeContent string   // cached home fragment
	Pages       []string // nav links, in order
	Debounce    time.Duration
	FadeRate    float64 // opacity per second
	NotFound    string
	ActiveLabel string
}

// fetchResult carries a finished fetch back to the frame loop.
type fetchResult struct {
	gen  uint64
	page string
	html string
	err  error
}

// Controller owns the displayed content and the nav links. All state is
// mutated from Update and the navigation methods, which run on the frame
// loop; fetches run in their own goroutine and report back over a channel.
type Controller struct {
	opts    Options
	history History

	page    string
	content string
	blocks  []Block
	fade    Fade

	links []Link

	// Pending content swap
	swapAt   time.Time
	swapPage string
	swapping bool

	// In-flight fetch
	gen         uint64
	cancelFetch context.CancelFunc
	results     chan fetchResult

	// Pending active-link label
	labelAt   time.Time
	labelLink int
	labeling  bool
}

// NewController creates a controller with nothing displayed yet.
// Call HandleRoute with the initial path to load the first page.
func NewController(opts Options) *Controller {
	if opts.NotFound == "" {
		opts.NotFound = DefaultNotFound
	}
	if opts.ActiveLabel == "" {
		opts.ActiveLabel = "❄"
	}

	c := &Controller{
		opts:    opts,
		fade:    Fade{Opacity: 1, Target: 1, Rate: opts.FadeRate},
		results: make(chan fetchResult, 1),
	}
	for _, page := range opts.Pages {
		c.links = append(c.links, newLink(page, opts.FadeRate))
	}
	return c
}

// Navigate handles a click on a page link: record history, swap content,
// mark the link active.
func (c *Controller) Navigate(page string, now time.Time) {
	c.history.Push(PathForPage(page, c.opts.Home))
	c.renderPage(page, now)
	c.updateActive(page, now)
}

// HandleRoute shows the page for a location path without recording history.
func (c *Controller) HandleRoute(path string, now time.Time) {
	page := PageFromPath(path, c.opts.Home)
	if c.history.Len() == 0 {
		c.history.Push(PathForPage(page, c.opts.Home))
	}
	c.updateActive(page, now)
	c.renderPage(page, now)
}

// Back returns to the previous history entry. Returns false when there is
// no previous entry.
func (c *Controller) Back(now time.Time) bool {
	path, ok := c.history.Back()
	if !ok {
		return false
	}
	c.HandleRoute(path, now)
	return true
}

// renderPage fades the content out and arms the debounced swap, replacing
// any swap or fetch still pending.
func (c *Controller) renderPage(page string, now time.Time) {
	c.fade.Out()
	c.cancelPending()

	c.swapPage = page
	c.swapAt = now.Add(c.opts.Debounce)
	c.swapping = true
}

// cancelPending drops the pending swap and cancels any in-flight fetch.
func (c *Controller) cancelPending() {
	c.swapping = false
	c.gen++
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}
}

// updateActive resets every link to its plain label and schedules the
// active link's label swap.
func (c *Controller) updateActive(page string, now time.Time) {
	c.labeling = false

	for i := range c.links {
		l := &c.links[i]
		l.Label = TitleCase(BaseName(l.ID))
		l.Active = false
		l.Fade.Set(1)
	}

	for i := range c.links {
		if c.links[i].ID == LinkID(page) {
			c.links[i].Fade.Set(0)
			c.labelLink = i
			c.labelAt = now.Add(c.opts.Debounce)
			c.labeling = true
			break
		}
	}
}

// Update fires due timers, collects finished fetches and advances fades.
func (c *Controller) Update(now time.Time, dt float64) {
	if c.swapping && !now.Before(c.swapAt) {
		c.swapping = false
		c.swap(c.swapPage)
	}

	if c.labeling && !now.Before(c.labelAt) {
		c.labeling = false
		l := &c.links[c.labelLink]
		l.Label = c.opts.ActiveLabel
		l.Active = true
		l.Fade.In()
	}

	select {
	case res := <-c.results:
		if res.gen == c.gen {
			c.cancelFetch()
			c.cancelFetch = nil
			if res.err != nil {
				slog.Debug("page fetch failed", "page", res.page, "error", res.err)
				c.setContent(res.page, c.opts.NotFound)
			} else {
				c.setContent(res.page, res.html)
			}
		}
	default:
	}

	c.fade.Update(dt)
	for i := range c.links {
		c.links[i].Fade.Update(dt)
	}
}

// swap shows home from the cache, or starts fetching any other page.
func (c *Controller) swap(page string) {
	if page == c.opts.Home {
		c.setContent(page, c.opts.HomeContent)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelFetch = cancel
	gen := c.gen
	results := c.results
	src := c.opts.Source

	go func() {
		html, err := src.Fetch(ctx, page)
		select {
		case results <- fetchResult{gen: gen, page: page, html: html, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (c *Controller) setContent(page, html string) {
	c.page = page
	c.content = html
	c.blocks = ParseBlocks(html)
	c.fade.In()
}

// Page returns the page whose content is displayed.
func (c *Controller) Page() string {
	return c.page
}

// Content returns the displayed fragment.
func (c *Controller) Content() string {
	return c.content
}

// Blocks returns the displayed fragment as text blocks.
func (c *Controller) Blocks() []Block {
	return c.blocks
}

// Opacity returns the content opacity in [0, 1].
func (c *Controller) Opacity() float64 {
	return c.fade.Opacity
}

// Links returns the nav links. Callers must not modify them.
func (c *Controller) Links() []Link {
	return c.links
}

// Path returns the current history path.
func (c *Controller) Path() string {
	return c.history.Current()
}

// Pending reports whether a swap or fetch is outstanding.
func (c *Controller) Pending() bool {
	return c.swapping || c.cancelFetch != nil
}

// Close cancels any in-flight fetch.
func (c *Controller) Close() {
	c.cancelPending()
}
