package http

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageEnvelope is the count/next/previous/results wrapper around
// paginated lists.
type PageEnvelope struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

type PageParams struct {
	Page     int
	PageSize int
}

// ParsePageParams reads page and page_size, falling back to page 1
// and the configured default size on absent or malformed values.
func ParsePageParams(c *gin.Context, defaultSize int) PageParams {
	params := PageParams{Page: 1, PageSize: defaultSize}

	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			params.Page = page
		}
	}
	if sizeStr := c.Query("page_size"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
			params.PageSize = size
		}
	}
	return params
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages reports the number of pages; an empty result set still
// has one (empty) page.
func TotalPages(count int64, pageSize int) int {
	if count <= 0 {
		return 1
	}
	pages := count / int64(pageSize)
	if count%int64(pageSize) != 0 {
		pages++
	}
	return int(pages)
}

// BuildEnvelope assembles the response envelope with next/previous
// links derived from the request URL. Page one is linked without an
// explicit page parameter.
func BuildEnvelope(c *gin.Context, params PageParams, count int64, results interface{}) PageEnvelope {
	totalPages := TotalPages(count, params.PageSize)

	envelope := PageEnvelope{Count: count, Results: results}
	if params.Page < totalPages {
		envelope.Next = pageURL(c, params.Page+1)
	}
	if params.Page > 1 {
		envelope.Previous = pageURL(c, params.Page-1)
	}
	return envelope
}

func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL
	query := u.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()

	link := u.String()
	if c.Request.Host != "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		absolute := url.URL{Scheme: scheme, Host: c.Request.Host, Path: u.Path, RawQuery: u.RawQuery}
		link = absolute.String()
	}
	return &link
}
