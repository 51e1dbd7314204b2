package paginator

import "testing"

func TestAdjust(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"defaults applied", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"negative values", PaginateQuery{Page: -2, Limit: -10}, DefaultPage, DefaultLimit},
		{"valid values kept", PaginateQuery{Page: 3, Limit: 50}, 3, 50},
		{"limit capped", PaginateQuery{Page: 1, Limit: 500}, 1, MaxLimit},
		{"limit at cap", PaginateQuery{Page: 1, Limit: 100}, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Adjust()
			if tt.in.Page != tt.wantPage || tt.in.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					tt.in.Page, tt.in.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PaginateQuery{Page: 3, Limit: 25}
	if got := p.Offset(); got != 50 {
		t.Errorf("offset = %d, want 50", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, perPage int64
		want           int
	}{
		{0, 15, 0},
		{15, 15, 1},
		{16, 15, 2},
		{101, 100, 2},
		{10, 0, 0},
	}
	for _, tt := range tests {
		p := Paginator{Total: tt.total, PerPage: tt.perPage}
		if got := p.TotalPages(); got != tt.want {
			t.Errorf("TotalPages(total=%d, perPage=%d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}
