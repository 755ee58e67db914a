// Package gateway publishes ticketing domain events to NSQ. All publishes
// are best-effort; the usecases log failures and move on.
package gateway

import (
	"context"

	"github.com/lajubus/lajubus/internal/pkg/models"
	"github.com/lajubus/lajubus/internal/pkg/nsq"
)

// NSQ topics for ticketing events
const (
	TopicTicketCreated  = "ticketing.ticket.created"
	TopicAgencyReviewed = "ticketing.agency.reviewed"
)

// TicketingGW publishes domain events through NSQ. A nil producer makes
// every publish a no-op, which is how deployments without NSQ run.
type TicketingGW struct {
	producer *nsq.Producer
}

// NewTicketingGW creates a new ticketing gateway. producer may be nil.
func NewTicketingGW(producer *nsq.Producer) *TicketingGW {
	return &TicketingGW{producer: producer}
}

// PublishTicketCreated publishes a ticket issuance event
func (g *TicketingGW) PublishTicketCreated(ctx context.Context, event models.TicketCreatedEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(TopicTicketCreated, event)
}

// PublishAgencyReviewed publishes an agency approval or rejection event
func (g *TicketingGW) PublishAgencyReviewed(ctx context.Context, event models.AgencyReviewedEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(TopicAgencyReviewed, event)
}
