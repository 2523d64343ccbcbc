package response

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
)

// Page is the paginated list envelope.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPage renders one page of items and links to its neighbours, keeping the
// other query parameters of r.
func NewPage[D any, T any](r *http.Request, req domain.PageRequest, page domain.Page[D], render func(D) T) Page[T] {
	results := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		results = append(results, render(item))
	}

	p := Page[T]{
		Count:   page.Total,
		Results: results,
	}

	if int64(req.Offset()+len(page.Items)) < page.Total {
		next := pageURL(r, req.Page+1)
		p.Next = &next
	}
	if req.Page > 1 {
		previous := pageURL(r, req.Page-1)
		p.Previous = &previous
	}

	return p
}

func pageURL(r *http.Request, page int) string {
	u := url.URL{
		Scheme: "http",
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	if r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}

	query := r.URL.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()

	return u.String()
}
