package services

import (
	"errors"
	"math"
	"time"

	"homechef/internal/core/domain/model/delivery"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/ports"
)

// ErrAgentNotFound is returned when no delivery agent can take the delivery:
// either no agents are on shift, or every one of them already carries the
// maximum number of active deliveries.
var ErrAgentNotFound = errors.New("delivery agent not found")

// DeliveryDispatcher is a domain service that picks a delivery agent for a
// new delivery and assigns it.
//
// Selection balances workload: among the agents on shift with spare
// capacity, the one carrying the fewest active deliveries wins, first one
// in case of ties. The parent order's status is checked by the delivery
// aggregate during assignment.
type DeliveryDispatcher struct {
	maxActiveDeliveries int
}

// NewDeliveryDispatcher creates a dispatcher enforcing the given per-agent
// cap on concurrent deliveries.
func NewDeliveryDispatcher(maxActiveDeliveries int) DeliveryDispatcher {
	return DeliveryDispatcher{maxActiveDeliveries: maxActiveDeliveries}
}

// Dispatch finds the least loaded available agent and assigns the delivery
// to them. Returns ErrAgentNotFound when nobody qualifies; the delivery is
// untouched in that case.
func (d DeliveryDispatcher) Dispatch(
	del *delivery.Delivery,
	orderStatus order.Status,
	agents []ports.AgentSnapshot,
	now time.Time,
) (kernel.UUID, error) {
	if err := del.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	best, err := d.findLeastLoadedAgent(agents)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = del.Assign(best.ID, orderStatus, now); err != nil {
		return kernel.UUID{}, err
	}

	return best.ID, nil
}

// CanTake reports whether the agent may take one more delivery.
func (d DeliveryDispatcher) CanTake(agent ports.AgentSnapshot) bool {
	return agent.IsOnShift && agent.ActiveDeliveries < d.maxActiveDeliveries
}

func (d DeliveryDispatcher) findLeastLoadedAgent(agents []ports.AgentSnapshot) (ports.AgentSnapshot, error) {
	var (
		best     ports.AgentSnapshot
		bestLoad = math.MaxInt
		found    = false
	)

	for _, agent := range agents {
		if !d.CanTake(agent) {
			continue
		}

		if agent.ActiveDeliveries < bestLoad {
			bestLoad = agent.ActiveDeliveries
			best = agent
			found = true
		}
	}

	if !found {
		return ports.AgentSnapshot{}, ErrAgentNotFound
	}

	return best, nil
}
