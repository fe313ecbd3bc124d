package dto

// ListResponse is a page of records together with the total matching the same filter.
type ListResponse[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
}
