package services

import "worklink_backend/internal/dto"

// feedPlan describes how one home-feed page is assembled from the newest-
// first and oldest-first slices of a city's eligible gigs.
type feedPlan struct {
	limit      int // window size, min(total, homeFeedPageSize)
	half       int // per-slice take; the page offset unit
	recentTake int
	oldTake    int
	skip       int
}

// planHomeFeed balances the two slices. With no surplus beyond the window
// (total <= homeFeedPageSize) the feed degenerates to a plain newest-first
// page. Otherwise each page takes HALF newest and up to HALF oldest gigs,
// where HALF is derived from comparing the surplus against the window:
// a large surplus splits the window itself in half, a small one splits the
// surplus. oldTake is clamped so the merged page never exceeds HALF*2.
func planHomeFeed(total int64, page int) feedPlan {
	limit := int(total)
	if limit > homeFeedPageSize {
		limit = homeFeedPageSize
	}
	remainder := int(total) - limit

	if remainder == 0 {
		return feedPlan{
			limit:      limit,
			recentTake: limit,
			skip:       (page - 1) * limit,
		}
	}

	var half int
	if remainder > limit {
		half = (limit + 1) / 2
	} else {
		half = (remainder + 1) / 2
	}

	oldTake := remainder - half
	if oldTake > half {
		oldTake = half
	}
	if oldTake < 0 {
		oldTake = 0
	}

	return feedPlan{
		limit:      limit,
		half:       half,
		recentTake: half,
		oldTake:    oldTake,
		skip:       (page - 1) * half,
	}
}

// interleave zips the two slices element by element and appends the tail of
// the longer one once the shorter is exhausted. Never indexes past either
// slice.
func interleave(recent, old []dto.GigSummary) []dto.GigSummary {
	merged := make([]dto.GigSummary, 0, len(recent)+len(old))
	for i := 0; i < len(recent) || i < len(old); i++ {
		if i < len(recent) {
			merged = append(merged, recent[i])
		}
		if i < len(old) {
			merged = append(merged, old[i])
		}
	}
	return merged
}
