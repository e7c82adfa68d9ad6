package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/proforma-dev/proforma/internal/statement"
)

// problemDetail is an RFC7807 problem details body. Identity failures
// carry both balance sheet totals as extension members.
type problemDetail struct {
	Title      string `json:"title"`
	Status     int    `json:"status"`
	Detail     string `json:"detail,omitempty"`
	Assets     string `json:"assets,omitempty"`
	LiabEquity string `json:"liab_equity,omitempty"`
	Difference string `json:"difference,omitempty"`
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondProblem sends an RFC7807 problem details response.
func respondProblem(w http.ResponseWriter, status int, title, detail string) {
	respondJSON(w, status, problemDetail{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// respondError maps evaluation errors to HTTP responses. Identity
// violations become 422s naming both totals; everything else from the
// core is a bad driver set.
func respondError(w http.ResponseWriter, err error) {
	var ub *statement.UnbalancedError
	if errors.As(err, &ub) {
		respondJSON(w, http.StatusUnprocessableEntity, problemDetail{
			Title:      "Balance Sheet Out of Balance",
			Status:     http.StatusUnprocessableEntity,
			Detail:     err.Error(),
			Assets:     ub.Assets.StringFixed(2),
			LiabEquity: ub.LiabEquity.StringFixed(2),
			Difference: ub.Assets.Sub(ub.LiabEquity).StringFixed(2),
		})
		return
	}
	respondProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
}

// decodeJSON decodes a JSON request body into the target struct.
// Unknown fields are rejected so driver typos never pass silently.
func decodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
