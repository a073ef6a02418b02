package dto

// Response is the uniform JSON envelope: every endpoint returns at least
// success and message; data, errors and pagination appear when relevant.
type Response struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       interface{}         `json:"data,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Pagination *Pagination         `json:"pagination,omitempty"`
}

// Pagination metadata for listing responses.
type Pagination struct {
	TotalCount  int `json:"total_count"`
	PageCount   int `json:"page_count"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
}

// NewPagination computes page_count = ceil(total/perPage).
func NewPagination(totalCount, page, perPage int) *Pagination {
	pageCount := 0
	if perPage > 0 {
		pageCount = (totalCount + perPage - 1) / perPage
	}
	return &Pagination{
		TotalCount:  totalCount,
		PageCount:   pageCount,
		CurrentPage: page,
		PerPage:     perPage,
	}
}

// PageRequest is the 1-based page selector shared by listing endpoints.
type PageRequest struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}

// Normalize applies defaults (page 1, 20 per page) and caps per_page at 100.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = 20
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// FieldErrors accumulates validation failures as field -> messages.
type FieldErrors map[string][]string

// Add appends a message for a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Empty reports whether no failures were recorded.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}
