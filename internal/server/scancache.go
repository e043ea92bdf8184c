package server

import "sync"

// scanItem is one address/value pair from a memory scan.
type scanItem struct {
	Address string `json:"address"`
	Value   string `json:"value"`
}

// resultSet is the full outcome of one scan as reported by the upstream:
// every stored item plus the upstream's total match count. TotalCount can
// exceed len(Items) when the upstream itself truncated storage.
type resultSet struct {
	TotalCount int
	Items      []scanItem
}

// scanPage is the caller-facing envelope for memscan and fetch_more.
// StoredCount counts the items in this reply, TotalCount always reflects
// the upstream total for the scan.
type scanPage struct {
	Success     bool       `json:"success"`
	TotalCount  int        `json:"total_count"`
	StoredCount int        `json:"stored_count"`
	Items       []scanItem `json:"items"`
}

// scanStore holds the results of at most one scan at a time. The slot
// belongs to whichever scan completed last; there is no per-client or
// per-session separation, matching the single upstream scan session.
type scanStore struct {
	mu  sync.Mutex
	set *resultSet
}

func newScanStore() *scanStore {
	return &scanStore{}
}

// Replace installs a new result set, dropping any previous one.
func (s *scanStore) Replace(set *resultSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = set
}

// Clear empties the slot.
func (s *scanStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = nil
}

// Page returns items [start, start+count) from the cached set along with
// the upstream total. ok is false when no scan results are cached at all.
// A start index beyond the end yields an empty page, not an error.
func (s *scanStore) Page(start, count int) (items []scanItem, total int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.set == nil {
		return nil, 0, false
	}
	if start < 0 {
		start = 0
	}
	items = []scanItem{}
	if start < len(s.set.Items) {
		end := start + count
		if end > len(s.set.Items) {
			end = len(s.set.Items)
		}
		items = append(items, s.set.Items[start:end]...)
	}
	return items, s.set.TotalCount, true
}

// Len reports how many items are currently cached.
func (s *scanStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set == nil {
		return 0
	}
	return len(s.set.Items)
}

// parseResultSet extracts a result set from a decoded memscan response
// body. The upstream nests it under "Results" with CamelCase fields.
func parseResultSet(body map[string]any) (*resultSet, bool) {
	raw, ok := body["Results"].(map[string]any)
	if !ok {
		return nil, false
	}

	set := &resultSet{}
	if total, ok := raw["TotalCount"].(float64); ok {
		set.TotalCount = int(total)
	}
	rawItems, _ := raw["Items"].([]any)
	set.Items = make([]scanItem, 0, len(rawItems))
	for _, entry := range rawItems {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := scanItem{}
		if addr, ok := m["Address"].(string); ok {
			item.Address = addr
		}
		if val, ok := m["Value"].(string); ok {
			item.Value = val
		}
		set.Items = append(set.Items, item)
	}
	if set.TotalCount < len(set.Items) {
		set.TotalCount = len(set.Items)
	}
	return set, true
}
