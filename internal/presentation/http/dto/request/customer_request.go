package request

// CustomerRequest carries the writable customer fields for create and update
type CustomerRequest struct {
	Name   string `json:"name" form:"name" binding:"required,max=255"`
	Email  string `json:"email" form:"email" binding:"omitempty,email"`
	Phone  string `json:"phone" form:"phone" binding:"omitempty,max=50"`
	Street string `json:"street" form:"street"`
	City   string `json:"city" form:"city"`
	State  string `json:"state" form:"state"`
	Zip    string `json:"zip" form:"zip"`
	Notes  string `json:"notes" form:"notes"`
	Status string `json:"status" form:"status"`
}

// CustomerFilterRequest represents customer list filter parameters
type CustomerFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
