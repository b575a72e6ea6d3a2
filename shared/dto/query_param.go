package dto

import (
	"hotel/shared"
	"hotel/shared/constant"
	"net/http"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty,gte=0"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, constant.DefaultValueRecentBookings)
//
// A zero defaultLimit leaves Limit unset when the request does not carry one, meaning no limit.
func (q *QueryParams) FromRequest(r *http.Request, defaultLimit int) {
	queryParams := r.URL.Query()

	if limit := shared.ConvertStringToInt(queryParams.Get(constant.RequestParamLimit)); limit != nil && *limit > 0 {
		q.Limit = *limit
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if q.Limit == 0 {
		q.Limit = defaultLimit
	}
}

// Descending reports whether results should be ordered newest first.
func (q *QueryParams) Descending() bool {
	return q.SortDir != SortDirAsc
}
