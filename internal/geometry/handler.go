package geometry

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"Relief/internal/validate"
)

// Handler exposes the geometry-only wetted-area calculation.
type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input FillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := WettedAreaFromFillVolume(input)
	if err != nil {
		if validate.IsInput(err) || validate.IsInfeasible(err) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		log.WithError(err).Error("unexpected error in wetted-area calculation")
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
