// Package explore implements the consumer side of the artwork
// collection: an infinite-scroll feed that accumulates pages from the
// AIC client, deduplicates them, and tracks its own load state.
package explore

import (
	"github.com/Cece94/articguessr/models/aic"
	"github.com/Cece94/articguessr/models/service"
	"github.com/Cece94/articguessr/network"
)

// State describes what the feed is doing. The UI renders from this
// instead of juggling ad-hoc booleans.
type State string

const (
	// StateIdle means the feed has data (possibly none yet) and can load more.
	StateIdle State = "idle"

	// StateLoading means a page request is in flight. LoadMore is a
	// no-op in this state; that is the guard against duplicate loads.
	StateLoading State = "loading"

	// StateErrored means the last load failed. Accumulated artworks
	// are kept; calling LoadMore again is the retry.
	StateErrored State = "errored"

	// StateExhausted means every page has been loaded.
	StateExhausted State = "exhausted"
)

// Fetcher is the one thing the feed needs from the network layer.
type Fetcher interface {
	FetchArtworks(filters *aic.Filters) *network.AICResponse
}

// Feed accumulates artworks for one filter selection. It is owned by a
// single caller and is not safe for concurrent use; the in-flight
// guard is the Loading state, not a lock.
type Feed struct {
	filters    *aic.Filters
	fetcher    Fetcher
	artworks   []*aic.Artwork
	seen       map[int]bool
	page       int
	totalPages int
	state      State
	err        error
}

// NewFeed creates an empty feed for the given filters. A nil filters
// means the default state. The filter's own Page field is where
// loading starts; LoadMore walks forward from there.
func NewFeed(filters *aic.Filters, fetcher Fetcher) *Feed {
	if filters == nil {
		filters = aic.DefaultFilters()
	}
	return &Feed{
		filters:  filters,
		fetcher:  fetcher,
		artworks: make([]*aic.Artwork, 0),
		seen:     make(map[int]bool),
		state:    StateIdle,
	}
}

func (feed *Feed) Filters() *aic.Filters {
	return feed.filters
}

// Artworks returns the accumulated artworks in arrival order.
func (feed *Feed) Artworks() []*aic.Artwork {
	return feed.artworks
}

func (feed *Feed) State() State {
	return feed.state
}

// Err returns the error from the most recent failed load, or nil.
func (feed *Feed) Err() error {
	return feed.err
}

func (feed *Feed) CurrentPage() int {
	return feed.page
}

func (feed *Feed) TotalPages() int {
	return feed.totalPages
}

// HasMore is true until the latest fetch reports that the current page
// is the last one. An empty feed always has more.
func (feed *Feed) HasMore() bool {
	return feed.state != StateExhausted
}

// LoadMore fetches the next page and appends its artworks. It is
// idempotent while a load is in flight and a no-op once exhausted.
// On failure the feed keeps everything loaded so far and moves to
// Errored; the same call is the retry.
func (feed *Feed) LoadMore() error {
	if feed.state == StateLoading || feed.state == StateExhausted {
		return nil
	}
	feed.state = StateLoading
	feed.err = nil

	nextPage := feed.filters.PageOrDefault()
	if feed.page > 0 {
		nextPage = feed.page + 1
	}
	pageFilters := *feed.filters
	pageFilters.Page = nextPage

	resp := feed.fetcher.FetchArtworks(&pageFilters)
	if resp.Error != nil {
		feed.state = StateErrored
		feed.err = resp.Error
		return resp.Error
	}

	feed.append(resp.Artworks())
	feed.page = nextPage
	feed.totalPages = resp.Pagination.TotalPages
	if feed.page >= feed.totalPages {
		feed.state = StateExhausted
	} else {
		feed.state = StateIdle
	}
	return nil
}

// append adds unseen artworks in order. First-seen wins: a record whose
// id already appeared keeps its original position and data. Records
// without a usable image never enter the feed.
func (feed *Feed) append(artworks []*aic.Artwork) {
	for _, artwork := range artworks {
		if !artwork.HasImage() {
			continue
		}
		if feed.seen[artwork.ID] {
			continue
		}
		feed.seen[artwork.ID] = true
		feed.artworks = append(feed.artworks, artwork)
	}
}

// ToSession captures the feed as a cacheable scroll session.
func (feed *Feed) ToSession() *service.ScrollSession {
	sess := service.NewScrollSession(feed.filters)
	sess.Artworks = feed.artworks
	sess.Page = feed.page
	sess.TotalPages = feed.totalPages
	sess.HasMore = feed.HasMore()
	return sess
}

// FeedFromSession rebuilds a feed from a cached scroll session, so a
// reload within the cache window resumes where the user left off.
func FeedFromSession(sess *service.ScrollSession, fetcher Fetcher) *Feed {
	feed := NewFeed(sess.Filters, fetcher)
	feed.append(sess.Artworks)
	feed.page = sess.Page
	feed.totalPages = sess.TotalPages
	if sess.Page > 0 && !sess.HasMore {
		feed.state = StateExhausted
	}
	return feed
}
