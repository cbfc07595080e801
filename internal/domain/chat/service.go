package chat

import (
	"context"
	"fmt"
	"strings"

	"pawtrack/internal/domain/listings"
)

// StatusCounter es lo único que el bot necesita del módulo de listings.
type StatusCounter interface {
	CountByStatus(ctx context.Context, status listings.Status) (int, error)
}

// Service responde preguntas frecuentes por matching de keywords.
// Sin estado, sin sesiones: función pura de (mensaje, conteos).
type Service struct {
	counter StatusCounter
}

func NewService(counter StatusCounter) *Service {
	return &Service{counter: counter}
}

func (s *Service) Respond(ctx context.Context, message string) (string, error) {
	msg := strings.ToLower(strings.TrimSpace(message))

	if msg == "" {
		return emptyMessageReply, nil
	}

	// Respuestas con datos vivos, antes que la tabla estática.
	if strings.Contains(msg, "available") &&
		(strings.Contains(msg, "pet") || strings.Contains(msg, "pets")) {
		count, err := s.counter.CountByStatus(ctx, listings.StatusAvailable)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Right now, there are %d pets available on PawTrack 🐾", count), nil
	}

	if strings.Contains(msg, "adopted") {
		count, err := s.counter.CountByStatus(ctx, listings.StatusAdopted)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("So far, %d pets have been adopted 🎉", count), nil
	}

	// Tabla FAQ: primer entry con algún tag presente gana.
	for _, entry := range faqTable {
		for _, tag := range entry.tags {
			if strings.Contains(msg, tag) {
				return entry.answer, nil
			}
		}
	}

	return fallbackReply, nil
}
