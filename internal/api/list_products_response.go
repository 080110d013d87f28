package api

// swagger:model api.Pagination
type Pagination struct {
	Page    int `json:"page" example:"1"`
	PerPage int `json:"per_page" example:"20"`
	Total   int `json:"total" example:"42"`
	Pages   int `json:"pages" example:"3"`
}

// swagger:model api.ListProductsResponse
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}
