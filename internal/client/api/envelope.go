package api

// The platform wraps responses three ways: a plain object, {"data": ...},
// or a paginated envelope with links and meta. Each resource method decodes
// into the variant its endpoint uses.

// envelope is the {"data": T} wrapper used by single-resource endpoints.
type envelope[T any] struct {
	Data T `json:"data"`
}

// Page is a paginated list envelope.
type Page[T any] struct {
	Data  []T       `json:"data"`
	Links PageLinks `json:"links"`
	Meta  PageMeta  `json:"meta"`
}

// PageLinks carries the server's navigation URLs. Prev and Next are empty
// on the first and last page respectively.
type PageLinks struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// PageMeta describes the pagination window.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from,omitempty"`
	To          int `json:"to,omitempty"`
}

// HasMore reports whether pages remain past the current one.
func (p PageMeta) HasMore() bool { return p.CurrentPage < p.LastPage }
