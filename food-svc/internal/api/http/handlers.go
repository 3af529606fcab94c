package httpapi

import (
	"encoding/json"
	"net/http"

	"foods-backend/food-svc/internal/domain"
	"foods-backend/food-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Foods service.FoodServiceInterface
}

func NewHandler(foodSvc service.FoodServiceInterface) *Handler {
	return &Handler{Foods: foodSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/foods", h.listFoods).Methods(http.MethodGet)
	r.HandleFunc("/foods", h.createFood).Methods(http.MethodPost)
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Foods.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if foods == nil {
		foods = []domain.Food{}
	}
	writeJSON(w, foods)
}

// createFood answers 200, not 201, on success.
func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateFoodRequest(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	food, err := h.Foods.Create(r.Context(), req.Name, req.Price)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, food)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
