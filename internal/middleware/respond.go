package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/model"
)

// WriteError writes the JSON error body shared by middleware and handlers.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error:         msg,
		CorrelationID: GetCorrelationID(r.Context()),
	})
}
