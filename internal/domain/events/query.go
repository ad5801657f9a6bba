package events

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// ListQuery is the filter/paging portion of the event list endpoint. Q
// matches as a case-insensitive substring against name or location.
type ListQuery struct {
	Q      string
	Limit  int
	Offset int
}

// ParseListQuery reads q/limit/offset from the request query. It never
// fails: unparseable numbers fall back to their defaults, the limit is
// clamped to 0..100 and the offset floored at 0.
func ParseListQuery(values url.Values) ListQuery {
	query := ListQuery{
		Q:      strings.TrimSpace(values.Get("q")),
		Limit:  defaultLimit,
		Offset: 0,
	}

	if raw := values.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			query.Limit = limit
		}
	}
	if query.Limit > maxLimit {
		query.Limit = maxLimit
	}
	if query.Limit < 0 {
		query.Limit = 0
	}

	if raw := values.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			query.Offset = offset
		}
	}

	return query
}
