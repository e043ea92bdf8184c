package server

import (
	"fmt"
	"testing"
)

func filledStore(n int) *scanStore {
	items := make([]scanItem, n)
	for i := range items {
		items[i] = scanItem{Address: fmt.Sprintf("0x%08X", 0x1000+i*4), Value: fmt.Sprintf("%d", i)}
	}
	store := newScanStore()
	store.Replace(&resultSet{TotalCount: n, Items: items})
	return store
}

func TestScanStoreEmpty(t *testing.T) {
	store := newScanStore()
	if _, _, ok := store.Page(0, 100); ok {
		t.Fatal("empty store should report no results")
	}
	if store.Len() != 0 {
		t.Fatalf("Len = %d, want 0", store.Len())
	}
}

func TestScanStorePagination(t *testing.T) {
	store := filledStore(437)

	items, total, ok := store.Page(0, 100)
	if !ok || total != 437 || len(items) != 100 {
		t.Fatalf("first page: ok=%v total=%d len=%d", ok, total, len(items))
	}
	if items[0].Address != "0x00001000" {
		t.Errorf("first address = %s", items[0].Address)
	}

	items, total, ok = store.Page(400, 100)
	if !ok || total != 437 || len(items) != 37 {
		t.Fatalf("tail page: ok=%v total=%d len=%d", ok, total, len(items))
	}

	// Past the end: empty page, total preserved, still ok.
	items, total, ok = store.Page(500, 100)
	if !ok || total != 437 || len(items) != 0 {
		t.Fatalf("past-end page: ok=%v total=%d len=%d", ok, total, len(items))
	}
}

func TestScanStoreReplaceDropsOldResults(t *testing.T) {
	store := filledStore(50)
	store.Replace(&resultSet{TotalCount: 3, Items: []scanItem{
		{Address: "0xA", Value: "1"}, {Address: "0xB", Value: "2"}, {Address: "0xC", Value: "3"},
	}})

	items, total, ok := store.Page(0, 100)
	if !ok || total != 3 || len(items) != 3 {
		t.Fatalf("after replace: ok=%v total=%d len=%d", ok, total, len(items))
	}
}

func TestScanStoreClear(t *testing.T) {
	store := filledStore(10)
	store.Clear()
	if _, _, ok := store.Page(0, 10); ok {
		t.Fatal("cleared store should report no results")
	}
}

func TestParseResultSet(t *testing.T) {
	body := map[string]any{
		"Success": true,
		"Results": map[string]any{
			"TotalCount": float64(250),
			"Items": []any{
				map[string]any{"Address": "0x1000", "Value": "7"},
				map[string]any{"Address": "0x1004", "Value": "9"},
			},
		},
	}
	set, ok := parseResultSet(body)
	if !ok {
		t.Fatal("expected result set")
	}
	if set.TotalCount != 250 || len(set.Items) != 2 {
		t.Fatalf("total=%d len=%d", set.TotalCount, len(set.Items))
	}
	if set.Items[1] != (scanItem{Address: "0x1004", Value: "9"}) {
		t.Errorf("item = %+v", set.Items[1])
	}
}

func TestParseResultSetMissing(t *testing.T) {
	if _, ok := parseResultSet(map[string]any{"Success": true}); ok {
		t.Fatal("body without Results should not parse")
	}
}

func TestParseResultSetFixesUndersizedTotal(t *testing.T) {
	body := map[string]any{
		"Results": map[string]any{
			"TotalCount": float64(1),
			"Items": []any{
				map[string]any{"Address": "0x1", "Value": "a"},
				map[string]any{"Address": "0x2", "Value": "b"},
			},
		},
	}
	set, _ := parseResultSet(body)
	if set.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", set.TotalCount)
	}
}

func TestClampScanCount(t *testing.T) {
	cases := []struct {
		in, fallback, want int
	}{
		{0, 100, 100},
		{-5, 100, 100},
		{42, 100, 42},
		{500, 100, 500},
		{501, 100, 500},
		{1000, 100, 500},
		{0, 250, 250},
	}
	for _, tc := range cases {
		if got := clampScanCount(tc.in, tc.fallback); got != tc.want {
			t.Errorf("clampScanCount(%d, %d) = %d, want %d", tc.in, tc.fallback, got, tc.want)
		}
	}
}
