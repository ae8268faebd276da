package ranking

// DefaultFeedCap bounds how many logical items the feed ever reports. The
// recommended ordering is re-randomized per request, so deep pagination over
// it would re-score everything for little value; the cap keeps that cost
// fixed end to end.
const DefaultFeedCap = 15

// WindowInfo describes one page of a windowed result set.
type WindowInfo struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
	// Offset and EffectiveLimit locate the page within the candidate list.
	Offset         int `json:"-"`
	EffectiveLimit int `json:"-"`
}

// Window computes the bounded page over trueCount already-sorted candidates.
// A cap <= 0 disables the bound (used by the ingredient-match path).
//
// The reported total is min(trueCount, cap): the feed never advertises more
// than cap items exist regardless of how many truly match.
func Window(trueCount, offset, limit, cap int) WindowInfo {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 10
	}

	info := WindowInfo{
		Page:   offset/limit + 1,
		Limit:  limit,
		Offset: offset,
	}

	if cap <= 0 {
		info.Total = trueCount
		info.EffectiveLimit = limit
		if offset >= trueCount {
			info.EffectiveLimit = 0
		} else if offset+limit > trueCount {
			info.EffectiveLimit = trueCount - offset
		}
		info.HasMore = offset+info.EffectiveLimit < trueCount
		return info
	}

	info.Total = trueCount
	if info.Total > cap {
		info.Total = cap
	}

	if offset >= cap {
		// Past the window: empty page, nothing more.
		return info
	}

	effective := limit
	if offset+effective > cap {
		effective = cap - offset
	}
	info.EffectiveLimit = effective
	info.HasMore = offset+effective < cap
	return info
}

// Slice applies the window to the candidate list it was computed over.
func (w WindowInfo) Slice(n int) (start, end int) {
	start = w.Offset
	if start > n {
		start = n
	}
	end = start + w.EffectiveLimit
	if end > n {
		end = n
	}
	return start, end
}
