package listings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

const (
	maxTitleLen        = 150
	maxDescriptionLen  = 500
	maxPhotoURLLen     = 500
	maxLocationURLLen  = 500
	maxLocationTextLen = 150
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Title        string
	Species      string
	Description  string
	PhotoURL     string
	LocationURL  string
	LocationText string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > maxTitleLen {
		return Pet{}, ErrInvalidInput
	}

	sp, ok := parseSpecies(in.Species)
	if !ok {
		return Pet{}, ErrInvalidInput
	}

	locationURL := strings.TrimSpace(in.LocationURL)
	if locationURL == "" || len(locationURL) > maxLocationURLLen {
		return Pet{}, ErrInvalidInput
	}

	if len(in.Description) > maxDescriptionLen {
		return Pet{}, ErrInvalidInput
	}
	if len(in.PhotoURL) > maxPhotoURLLen {
		return Pet{}, ErrInvalidInput
	}
	if len(in.LocationText) > maxLocationTextLen {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:           uuid.NewString(),
		Title:        title,
		Species:      sp,
		Description:  strings.TrimSpace(in.Description),
		PhotoURL:     strings.TrimSpace(in.PhotoURL),
		LocationURL:  locationURL,
		LocationText: strings.TrimSpace(in.LocationText),
		Status:       StatusAvailable,
		CreatedAt:    s.now().UTC(),
		AdoptedAt:    nil,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// List filtra por status. Vacío => AVAILABLE. El valor se normaliza a
// mayúsculas pero NO se valida contra el enum: un status desconocido
// filtra literal y devuelve lista vacía (misma semántica del query-time
// que en el write-time sí rechazamos).
func (s *Service) List(ctx context.Context, status string) ([]Pet, error) {
	st := strings.ToUpper(strings.TrimSpace(status))
	if st == "" {
		st = string(StatusAvailable)
	}
	return s.repo.ListByStatus(ctx, Status(st))
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// MarkAdopted setea ADOPTED y re-estampa adopted_at incondicionalmente,
// incluso si ya estaba adoptado: repetir no es error (ver DESIGN.md).
func (s *Service) MarkAdopted(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	if err := s.repo.MarkAdopted(ctx, id, s.now().UTC()); err != nil {
		return Pet{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// CountByStatus expone el conteo para el chatbot.
func (s *Service) CountByStatus(ctx context.Context, status Status) (int, error) {
	return s.repo.CountByStatus(ctx, status)
}

func parseSpecies(s string) (Species, bool) {
	switch Species(strings.ToUpper(strings.TrimSpace(s))) {
	case SpeciesDog:
		return SpeciesDog, true
	case SpeciesCat:
		return SpeciesCat, true
	default:
		return "", false
	}
}
