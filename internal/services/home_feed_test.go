package services

import (
	"fmt"
	"testing"

	"worklink_backend/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestPlanHomeFeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int64
		page  int
		want  feedPlan
	}{
		{
			name:  "empty city",
			total: 0,
			page:  1,
			want:  feedPlan{limit: 0, recentTake: 0, oldTake: 0, skip: 0},
		},
		{
			name:  "fewer gigs than the window",
			total: 7,
			page:  1,
			want:  feedPlan{limit: 7, recentTake: 7, oldTake: 0, skip: 0},
		},
		{
			name:  "exactly the window",
			total: 10,
			page:  1,
			want:  feedPlan{limit: 10, recentTake: 10, oldTake: 0, skip: 0},
		},
		{
			name:  "surplus of one",
			total: 11,
			page:  1,
			want:  feedPlan{limit: 10, half: 1, recentTake: 1, oldTake: 0, skip: 0},
		},
		{
			name:  "small surplus splits the surplus",
			total: 17,
			page:  1,
			want:  feedPlan{limit: 10, half: 4, recentTake: 4, oldTake: 3, skip: 0},
		},
		{
			name:  "large surplus splits the window",
			total: 30,
			page:  1,
			want:  feedPlan{limit: 10, half: 5, recentTake: 5, oldTake: 5, skip: 0},
		},
		{
			name:  "second page advances by half",
			total: 30,
			page:  2,
			want:  feedPlan{limit: 10, half: 5, recentTake: 5, oldTake: 5, skip: 5},
		},
		{
			name:  "second page of a plain feed advances by the window",
			total: 10,
			page:  2,
			want:  feedPlan{limit: 10, recentTake: 10, oldTake: 0, skip: 10},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, planHomeFeed(tc.total, tc.page))
		})
	}
}

func TestPlanHomeFeed_PageNeverExceedsTwiceHalf(t *testing.T) {
	t.Parallel()

	for total := int64(0); total <= 60; total++ {
		plan := planHomeFeed(total, 1)
		if plan.oldTake > 0 {
			assert.LessOrEqualf(t, plan.recentTake+plan.oldTake, plan.half*2,
				"total=%d", total)
		}
		assert.GreaterOrEqual(t, plan.oldTake, 0, "total=%d", total)
		assert.LessOrEqual(t, plan.recentTake, homeFeedPageSize, "total=%d", total)
	}
}

func TestInterleave(t *testing.T) {
	t.Parallel()

	gigs := func(prefix string, n int) []dto.GigSummary {
		out := make([]dto.GigSummary, n)
		for i := range out {
			out[i] = dto.GigSummary{ID: fmt.Sprintf("%s%d", prefix, i+1)}
		}
		return out
	}

	ids := func(in []dto.GigSummary) []string {
		out := make([]string, len(in))
		for i, g := range in {
			out[i] = g.ID
		}
		return out
	}

	t.Run("alternates and appends the tail", func(t *testing.T) {
		merged := interleave(gigs("r", 4), gigs("o", 3))
		assert.Equal(t, []string{"r1", "o1", "r2", "o2", "r3", "o3", "r4"}, ids(merged))
	})

	t.Run("longer old side", func(t *testing.T) {
		merged := interleave(gigs("r", 2), gigs("o", 4))
		assert.Equal(t, []string{"r1", "o1", "r2", "o2", "o3", "o4"}, ids(merged))
	})

	t.Run("empty old side", func(t *testing.T) {
		merged := interleave(gigs("r", 3), nil)
		assert.Equal(t, []string{"r1", "r2", "r3"}, ids(merged))
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Empty(t, interleave(nil, nil))
	})
}
