package pagination

import "testing"

func TestPaginate_FirstPage(t *testing.T) {
	r := Paginate(25, Params{Page: 1, Limit: 10})

	if r.Total != 25 {
		t.Fatalf("Total=%d want 25", r.Total)
	}
	if r.TotalPages != 3 {
		t.Fatalf("TotalPages=%d want 3", r.TotalPages)
	}
	if r.Previous != nil {
		t.Fatalf("expected no Previous on page 1, got %+v", r.Previous)
	}
	if r.Next == nil || r.Next.Page != 2 || r.Next.Limit != 10 {
		t.Fatalf("unexpected Next: %+v", r.Next)
	}
}

func TestPaginate_LastPage(t *testing.T) {
	r := Paginate(25, Params{Page: 3, Limit: 10})

	if r.Next != nil {
		t.Fatalf("expected no Next on last page, got %+v", r.Next)
	}
	if r.Previous == nil || r.Previous.Page != 2 || r.Previous.Limit != 10 {
		t.Fatalf("unexpected Previous: %+v", r.Previous)
	}
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	r := Paginate(25, Params{Page: 7, Limit: 10})

	if r.Next != nil {
		t.Fatalf("expected no Next beyond the end, got %+v", r.Next)
	}
	if r.Previous == nil || r.Previous.Page != 6 {
		t.Fatalf("unexpected Previous: %+v", r.Previous)
	}
	if r.TotalPages != 3 {
		t.Fatalf("TotalPages=%d want 3", r.TotalPages)
	}
}

func TestPaginate_ZeroTotal(t *testing.T) {
	r := Paginate(0, Params{Page: 1, Limit: 10})

	if r.TotalPages != 0 {
		t.Fatalf("TotalPages=%d want 0", r.TotalPages)
	}
	if r.Next != nil || r.Previous != nil {
		t.Fatalf("expected no page refs, got next=%+v prev=%+v", r.Next, r.Previous)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	p := Params{}.Normalize()
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	p = Params{Page: -3, Limit: 1000}.Normalize()
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Fatalf("unexpected normalization: %+v", p)
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("Offset=%d want 20", got)
	}
	if got := (Params{}).Offset(); got != 0 {
		t.Fatalf("Offset=%d want 0", got)
	}
}

func TestBounds_ClampsToSliceLength(t *testing.T) {
	start, end := (Params{Page: 3, Limit: 10}).Bounds(25)
	if start != 20 || end != 25 {
		t.Fatalf("bounds=(%d,%d) want (20,25)", start, end)
	}

	start, end = (Params{Page: 9, Limit: 10}).Bounds(25)
	if start != 25 || end != 25 {
		t.Fatalf("bounds=(%d,%d) want (25,25)", start, end)
	}
}
