package listings

import "time"

// Species define las especies soportadas.
// @Enum DOG, CAT
type Species string

const (
	SpeciesDog Species = "DOG"
	SpeciesCat Species = "CAT"
)

// Status define el ciclo de vida de una publicación.
// Transición única AVAILABLE -> ADOPTED, sin vuelta atrás.
// @Enum AVAILABLE, ADOPTED
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusAdopted   Status = "ADOPTED"
)

// Pet representa una publicación de adopción.
// Invariante: AdoptedAt != nil si y solo si Status == ADOPTED.
type Pet struct {
	ID string

	Title       string
	Species     Species // DOG, CAT
	Description string

	PhotoURL     string // opcional, URL opaca
	LocationURL  string // requerida, URL opaca (link a maps)
	LocationText string // opcional, ubicación legible

	Status    Status
	CreatedAt time.Time
	AdoptedAt *time.Time
}
