package pagination

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"dental-clinic-api/pkg/apperror"
)

const DefaultMaxLimit = 100

var (
	ErrLimitRequired = apperror.Validation("limit is required")
	ErrInvalidLimit  = apperror.Validation("limit must be a positive number")
	ErrInvalidPage   = apperror.Validation("page must be a non-negative number")
)

// Params is an offset/count window. Page is zero based.
type Params struct {
	Page  int
	Limit int
	Skip  int
	Take  int
}

// Paginator converts page/limit query values into Params.
type Paginator struct {
	maxLimit int
}

func NewPaginator(maxLimit int) *Paginator {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &Paginator{maxLimit: maxLimit}
}

// Parse validates limit and page. limit is required and clamped to the
// configured maximum; an empty page means page 0.
func (p *Paginator) Parse(limit, page string) (Params, error) {
	limit = strings.TrimSpace(limit)
	page = strings.TrimSpace(page)

	if limit == "" {
		return Params{}, ErrLimitRequired
	}
	if page == "" {
		page = "0"
	}

	take, err := strconv.Atoi(limit)
	if err != nil || take <= 0 {
		return Params{}, ErrInvalidLimit
	}
	if take > p.maxLimit {
		take = p.maxLimit
	}

	pageNumber, err := strconv.Atoi(page)
	if err != nil || pageNumber < 0 || pageNumber > math.MaxInt/take {
		return Params{}, ErrInvalidPage
	}

	return Params{
		Page:  pageNumber,
		Limit: take,
		Skip:  pageNumber * take,
		Take:  take,
	}, nil
}

// FromRequest reads limit and page from the URL query.
func (p *Paginator) FromRequest(r *http.Request) (Params, error) {
	q := r.URL.Query()
	return p.Parse(q.Get("limit"), q.Get("page"))
}

func (p *Paginator) MaxLimit() int {
	return p.maxLimit
}
