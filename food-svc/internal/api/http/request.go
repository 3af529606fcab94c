package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
)

// createFoodRequest is the create payload with defaults applied:
//
//	name  -> ""
//	price -> 0
//
// A field that is missing, null or of the wrong JSON type takes its default.
type createFoodRequest struct {
	Name  string
	Price float64
}

func decodeCreateFoodRequest(body io.Reader) (createFoodRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return createFoodRequest{}, fmt.Errorf("invalid JSON body: %w", err)
	}

	var req createFoodRequest
	if raw, ok := fields["name"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			req.Name = name
		}
	}
	if raw, ok := fields["price"]; ok {
		var price float64
		if err := json.Unmarshal(raw, &price); err == nil {
			req.Price = price
		}
	}
	return req, nil
}
