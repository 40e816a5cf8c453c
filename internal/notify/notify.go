// Package notify turns flight mutation events into operator notifications.
// The worker consumes the notifications topic and hands each event to the
// Dispatcher.
package notify

import (
	"context"
	"fmt"

	"github.com/BoysInc/volair-dashboard-sub000/internal/kafka"
)

type Dispatcher struct{}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event kafka.FlightEvent) error {
	fmt.Printf("notify operator %s: %s for flight %s (%s, %s)\n",
		event.OperatorID, message(event.Type), event.FlightID, event.RouteType, event.Status)
	return nil
}

func message(eventType string) string {
	switch eventType {
	case "flight_created":
		return "flight scheduled"
	case "flight_updated":
		return "flight updated"
	case "flight_deleted":
		return "flight removed"
	default:
		return eventType
	}
}
