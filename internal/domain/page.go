package domain

// Page is the server's pagination envelope for list endpoints.
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Size    int64 `json:"size"`
	Current int64 `json:"current"`
	Pages   int64 `json:"pages"`
}

// PageQuery is the cursor shared by every paginated list request.
type PageQuery struct {
	Current int
	Size    int
}
