// Package pagination provides the page request/result types used by every
// list endpoint.
package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/srikarthikeya/caterers/internal/errs"
)

const (
	DefaultPage    = 0
	DefaultSize    = 10
	DefaultSortBy  = "createdAt"
	DefaultSortDir = "DESC"
)

// Request describes one page of a sorted collection. Page is zero-based.
type Request struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// FromQuery parses page/size/sortBy/sortDir from URL query values,
// applying defaults for absent parameters. Non-numeric page or size and
// unknown sort directions are rejected; bound checks happen later in the
// validation utility.
func FromQuery(values url.Values) (Request, error) {
	req := Request{
		Page:    DefaultPage,
		Size:    DefaultSize,
		SortBy:  DefaultSortBy,
		SortDir: DefaultSortDir,
	}

	if v := values.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, errs.BadRequest("invalid page parameter: %s", v)
		}
		req.Page = n
	}
	if v := values.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, errs.BadRequest("invalid size parameter: %s", v)
		}
		req.Size = n
	}
	if v := values.Get("sortBy"); v != "" {
		req.SortBy = v
	}
	if v := values.Get("sortDir"); v != "" {
		dir := strings.ToUpper(v)
		if dir != "ASC" && dir != "DESC" {
			return Request{}, errs.BadRequest("invalid sort direction: %s", v)
		}
		req.SortDir = dir
	}
	return req, nil
}

// Offset is the number of records to skip.
func (r Request) Offset() int64 {
	return int64(r.Page) * int64(r.Size)
}

// SortOrder returns the mongo sort value: 1 ascending, -1 descending.
func (r Request) SortOrder() int {
	if strings.EqualFold(r.SortDir, "ASC") {
		return 1
	}
	return -1
}

// Page is one slice of a collection plus the metadata the clients page by.
// Count and fetch are separate reads, so the totals are only consistent
// absent concurrent mutation.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewPage assembles a Page from fetched content and the full collection
// count. TotalPages is ceil(total/size); Last is true on and past the
// final page.
func NewPage[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := int((total + int64(req.Size) - 1) / int64(req.Size))
	return Page[T]{
		Content:       content,
		PageNumber:    req.Page,
		PageSize:      req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          req.Page >= totalPages-1,
	}
}
