package mockapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	TraceID string `json:"traceId"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
		Status:  status,
		TraceID: middleware.GetReqID(r.Context()),
	})
}

// page is the backend's paged listing envelope.
type page[T any] struct {
	Items       []T  `json:"items"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	PageNumber  int  `json:"pageNumber"`
	PageSize    int  `json:"pageSize"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

func paginate[T any](items []T, pageNumber, pageSize int) page[T] {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	start := (pageNumber - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return page[T]{
		Items:       out,
		TotalCount:  total,
		TotalPages:  totalPages,
		PageNumber:  pageNumber,
		PageSize:    pageSize,
		HasNext:     pageNumber < totalPages,
		HasPrevious: pageNumber > 1 && total > 0,
	}
}
