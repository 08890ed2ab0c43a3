package services

import (
	"context"
	"fmt"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// Ensure ContextService implements the interface.
var _ driving.ContextService = (*ContextService)(nil)

// ContextService loads individual corpus lines and the lines
// surrounding them within the same play.
type ContextService struct {
	gateway driven.SearchGateway
}

// NewContextService creates a new context service.
func NewContextService(gateway driven.SearchGateway) *ContextService {
	return &ContextService{gateway: gateway}
}

// Line fetches a single line by its corpus line ID.
func (s *ContextService) Line(ctx context.Context, lineID int) (*domain.PlayLine, error) {
	if s.gateway == nil {
		return nil, domain.ErrGatewayUnavailable
	}
	if lineID <= 0 {
		return nil, fmt.Errorf("%w: line id must be positive", domain.ErrInvalidInput)
	}

	line, err := s.gateway.Line(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineID, err)
	}
	return line, nil
}

// Context fetches the lines surrounding lineID within playName, size
// lines either side, in line order.
func (s *ContextService) Context(
	ctx context.Context, playName string, lineID, size int,
) ([]domain.PlayLine, error) {
	if s.gateway == nil {
		return nil, domain.ErrGatewayUnavailable
	}
	if playName == "" {
		return nil, fmt.Errorf("%w: play name is required", domain.ErrInvalidInput)
	}
	if lineID <= 0 {
		return nil, fmt.Errorf("%w: line id must be positive", domain.ErrInvalidInput)
	}
	if size <= 0 {
		size = domain.DefaultContextSize
	}

	logger.Debug("Loading context: play=%q, line=%d, size=%d", playName, lineID, size)

	lines, err := s.gateway.Context(ctx, playName, lineID, size)
	if err != nil {
		return nil, fmt.Errorf("context for line %d: %w", lineID, err)
	}
	return lines, nil
}

// ContextForLine looks the line up first and then loads its
// surrounding context, for callers that only know the line ID.
func (s *ContextService) ContextForLine(ctx context.Context, lineID, size int) ([]domain.PlayLine, error) {
	line, err := s.Line(ctx, lineID)
	if err != nil {
		return nil, err
	}
	return s.Context(ctx, line.PlayName, lineID, size)
}
