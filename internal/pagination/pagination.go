package pagination

import "math"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Params struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Result struct {
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	Total      int64    `json:"total"`
	TotalPages int      `json:"total_pages"`
	Next       *PageRef `json:"next,omitempty"`
	Previous   *PageRef `json:"previous,omitempty"`
}

// Normalize applies the defaults: pages are 1-indexed, limits are capped.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	return p
}

func (p Params) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.Limit
}

// Paginate computes the page descriptors for total records. A page past the
// end yields no Next; Previous appears for every page after the first.
func Paginate(total int64, p Params) Result {
	p = p.Normalize()

	r := Result{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}
	if p.Page < r.TotalPages {
		r.Next = &PageRef{Page: p.Page + 1, Limit: p.Limit}
	}
	if p.Page > 1 {
		r.Previous = &PageRef{Page: p.Page - 1, Limit: p.Limit}
	}
	return r
}

// Bounds clamps the page window to an in-memory slice of length n.
func (p Params) Bounds(n int) (int, int) {
	p = p.Normalize()
	start := p.Offset()
	if start > n {
		start = n
	}
	end := start + p.Limit
	if end > n {
		end = n
	}
	return start, end
}
