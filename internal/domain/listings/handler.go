package listings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pawtrack/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Público: cualquiera reporta una mascota callejera.
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))

		// Solo usuarios logueados pueden adoptar.
		pr.Post("/{petID}/save", adoptPetHandler(svc))
	})
}

type createPetRequest struct {
	Title        string `json:"title"`
	Species      string `json:"species"`
	Description  string `json:"description"`
	PhotoURL     string `json:"photo_url"`
	LocationURL  string `json:"location_url"`
	LocationText string `json:"location_text"`
}

type petResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Species      string     `json:"species"`
	Description  string     `json:"description,omitempty"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	LocationURL  string     `json:"location_url"`
	LocationText string     `json:"location_text,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	AdoptedAt    *time.Time `json:"adopted_at"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Title:        req.Title,
			Species:      req.Species,
			Description:  req.Description,
			PhotoURL:     req.PhotoURL,
			LocationURL:  req.LocationURL,
			LocationText: req.LocationText,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func adoptPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.MarkAdopted(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		Title:        p.Title,
		Species:      string(p.Species),
		Description:  p.Description,
		PhotoURL:     p.PhotoURL,
		LocationURL:  p.LocationURL,
		LocationText: p.LocationText,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		AdoptedAt:    p.AdoptedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
