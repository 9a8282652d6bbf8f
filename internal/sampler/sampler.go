// Package sampler picks catalog content for a learner, preferring their
// primary interest and backfilling from the whole pool.
package sampler

import (
	"math/rand/v2"
	"strings"
	"sync"

	"go_4_study_scheduler/internal/model"

	"github.com/google/uuid"
)

// Sampler is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand // nil means the global source
}

// New returns a sampler backed by the runtime's global random source.
func New() *Sampler {
	return &Sampler{}
}

// NewSeeded returns a reproducible sampler.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Sampler) shuffle(items []model.ContentItem) {
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if s.rng == nil {
		rand.Shuffle(len(items), swap)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(items), swap)
}

// Sample draws up to count distinct items from pool without replacement.
// Items tagged with tags[0] (case-insensitive) are drawn first; the rest of
// the pool fills whatever is left. With no tags the draw is uniform over the
// pool. The result never holds the same id twice.
func (s *Sampler) Sample(pool []model.ContentItem, tags []string, count int) []model.ContentItem {
	if count <= 0 || len(pool) == 0 {
		return []model.ContentItem{}
	}

	candidates := dedupe(pool)
	picked := make([]model.ContentItem, 0, min(count, len(candidates)))
	chosen := make(map[uuid.UUID]struct{}, cap(picked))

	if primary := primaryTag(tags); primary != "" {
		var matches []model.ContentItem
		for _, item := range candidates {
			if item.HasTag(primary) {
				matches = append(matches, item)
			}
		}
		s.shuffle(matches)
		for _, item := range matches {
			if len(picked) == count {
				break
			}
			picked = append(picked, item)
			chosen[item.ID] = struct{}{}
		}
	}

	if len(picked) < count {
		remaining := make([]model.ContentItem, 0, len(candidates)-len(picked))
		for _, item := range candidates {
			if _, ok := chosen[item.ID]; !ok {
				remaining = append(remaining, item)
			}
		}
		s.shuffle(remaining)
		for _, item := range remaining {
			if len(picked) == count {
				break
			}
			picked = append(picked, item)
		}
	}

	return picked
}

// SampleOne is Sample with count=1; ok is false when the pool is empty.
func (s *Sampler) SampleOne(pool []model.ContentItem, tags []string) (model.ContentItem, bool) {
	got := s.Sample(pool, tags, 1)
	if len(got) == 0 {
		return model.ContentItem{}, false
	}
	return got[0], true
}

// IDs projects items onto their ids, keeping order.
func IDs(items []model.ContentItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func primaryTag(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(tags[0]))
}

func dedupe(pool []model.ContentItem) []model.ContentItem {
	seen := make(map[uuid.UUID]struct{}, len(pool))
	out := make([]model.ContentItem, 0, len(pool))
	for _, item := range pool {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
