package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
)

// ErrStaleResult marks a search response that completed after a newer search
// already delivered its page. Callers drop it instead of rendering it.
var ErrStaleResult = errors.New("stale search result")

// DefaultPageSize matches the server's default search page.
const DefaultPageSize = 10

// SearchService wraps user search with a staleness guard: concurrent
// searches finishing out of order resolve by completion time, and an older
// response never overwrites a newer one.
type SearchService struct {
	client api.Client

	// seq numbers searches at issue time; newest tracks the highest sequence
	// whose response has been delivered.
	seq    atomic.Uint64
	newest atomic.Uint64
}

func NewSearchService(client api.Client) *SearchService {
	return &SearchService{client: client}
}

// Search queries profiles by optional skill and/or name filter. A response
// overtaken by a newer one returns ErrStaleResult.
func (s *SearchService) Search(ctx context.Context, skill, name string, page, size int) (*api.SearchResult, error) {
	if size <= 0 {
		size = DefaultPageSize
	}

	id := s.seq.Add(1)

	res, err := s.client.SearchUsers(ctx, skill, name, page, size)
	if err != nil {
		return nil, err
	}

	for {
		cur := s.newest.Load()
		if id < cur {
			return nil, ErrStaleResult
		}
		if s.newest.CompareAndSwap(cur, id) {
			return res, nil
		}
	}
}
