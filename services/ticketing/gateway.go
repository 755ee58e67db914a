package ticketing

import (
	"context"

	"github.com/lajubus/lajubus/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lajubus/lajubus/services/ticketing TicketingGW

// TicketingGW publishes domain events for downstream dashboards and
// analytics. Publishing is best-effort; failures are logged, never
// surfaced to the API caller.
type TicketingGW interface {
	PublishTicketCreated(ctx context.Context, event models.TicketCreatedEvent) error
	PublishAgencyReviewed(ctx context.Context, event models.AgencyReviewedEvent) error
}
