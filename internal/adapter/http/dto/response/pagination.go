package response

// Pagination is the list-envelope metadata shared by all paginated endpoints.
type Pagination struct {
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
}
