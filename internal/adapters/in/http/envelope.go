package http

import (
	"restaurant/internal/core/application/usecases/queries"
)

// Envelope wraps every response body.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Count      *int        `json:"count,omitempty"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func newPagination(info queries.PageInfo) *Pagination {
	return &Pagination{
		Total:      info.Total,
		Page:       info.Page,
		Limit:      info.Limit,
		TotalPages: info.TotalPages,
	}
}

func ok(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func okWithMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func okWithCount(data any, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}

func failure(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
