package model

// Pagination is shared by every paginated query endpoint. Page is 1-based;
// zero values mean "use defaults".
type Pagination struct {
	Page     int `query:"page" json:"page"`
	PageSize int `query:"page_size" json:"pageSize"`
}

// FilmList is the envelope for every paginated film listing.
type FilmList struct {
	Rows       any   `json:"rows"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}
