package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// collection is the decoded shape of a list response, classified once at the
// HTTP boundary: a bare array (flat), a paginated envelope (paged), or
// anything else (empty, a defensive default rather than an error).
type collection struct {
	results json.RawMessage
	next    string
	paged   bool
}

func classifyCollection(raw []byte) collection {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return collection{}
	}
	if trimmed[0] == '[' {
		return collection{results: trimmed}
	}
	if trimmed[0] == '{' {
		var envelope struct {
			Results json.RawMessage `json:"results"`
			Next    *string         `json:"next"`
			Count   int             `json:"count"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Results != nil {
			next := ""
			if envelope.Next != nil {
				next = *envelope.Next
			}
			return collection{results: envelope.Results, next: next, paged: true}
		}
	}
	return collection{}
}

// collectList fetches a list endpoint and normalizes it to one ordered
// slice. Paginated envelopes are drained strictly sequentially, following
// each next link until it is null and concatenating results in server
// order; no de-duplication is performed.
func collectList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	if query == nil {
		query = url.Values{}
	}
	if query.Get("page_size") == "" {
		query.Set("page_size", strconv.Itoa(c.pageSize))
	}

	all := []T{}
	nextURL := c.resolve(path, query)
	for nextURL != "" {
		raw, err := c.send(ctx, http.MethodGet, nextURL, nil, true)
		if err != nil {
			return nil, err
		}
		col := classifyCollection(raw)
		if col.results != nil {
			var page []T
			if err := json.Unmarshal(col.results, &page); err != nil {
				return nil, err
			}
			all = append(all, page...)
		}
		nextURL = col.next
	}
	return all, nil
}
