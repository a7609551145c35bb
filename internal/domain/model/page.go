package model

// PageView is one rendered page of query results.
//
// @Description One page of catalog results
type PageView struct {
	// Items are the products on the current page
	Items []Product `json:"items"`
	// CurrentPage is the 1-based page number (clamped to [1, TotalPages])
	CurrentPage int `json:"current_page" example:"1"`
	// TotalPages is ceil(total_results / page_size); 0 when empty
	TotalPages int `json:"total_pages" example:"2"`
	// TotalResults is the size of the full filtered result set
	TotalResults int `json:"total_results" example:"20"`
}
