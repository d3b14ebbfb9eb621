package eventbuilder

import (
	"fmt"

	"github.com/lvlath-contrib/pnpsched/domain"
	"github.com/lvlath-contrib/pnpsched/routing"
)

const feederFeederPartType = "Feeder"

// PickupEvent is the one PICKUP emitted at the start of every cluster
// (§4.4 step 1): time = machine.pick_time, no arc.
func PickupEvent(feeder domain.Node, machine domain.Machine) domain.Event {
	return domain.Event{
		Kind:   domain.Pickup,
		Detail: fmt.Sprintf("pickup_%s_%s", feeder.ID, feeder.PartType),
		Time:   machine.PickTime,
	}
}

// PlaceEvent marks the head placing a part at placement (§4.4 step 2's
// second bullet): time = machine.place_time, no arc.
func PlaceEvent(placement domain.Node, machine domain.Machine) domain.Event {
	return domain.Event{
		Kind:   domain.Place,
		Detail: fmt.Sprintf("place_%s_%s", placement.ID, placement.PartType),
		Time:   machine.PlaceTime,
	}
}

// ChangeoverEvent marks a boundary between two job instances (§4.4): time =
// machine.pcb_changeover_time, no arc. Emitted between consecutive jobs and
// between repeats of the same job.
func ChangeoverEvent(fromJobInstanceID, toJobInstanceID string, machine domain.Machine) domain.Event {
	return domain.Event{
		Kind:   domain.Changeover,
		Detail: fmt.Sprintf("changeover_%s_%s", fromJobInstanceID, toJobInstanceID),
		Time:   machine.PCBChangeoverTime,
	}
}

func travelEvent(from, to domain.Node, partType string, t float64, arc domain.Arc) domain.Event {
	return domain.Event{
		Kind:   domain.Travel,
		Detail: fmt.Sprintf("travel_%s-%s-%s-%s", from.ID, partType, to.ID, to.PartType),
		Time:   t,
		Arc:    &arc,
	}
}

// FeederTravelEvent emits a feeder-to-feeder TRAVEL event between two feeders
// visited back to back, within one job or across a job boundary (§4.4: "using the feeder↔feeder
// distance and travel_speed" — no align/place overhead, unlike a routed arc).
func FeederTravelEvent(from, to domain.Node, distance, travelSpeed float64) domain.Event {
	arc := domain.Arc{XI: from.Point.X, YI: from.Point.Y, XJ: to.Point.X, YJ: to.Point.Y, Distance: distance}

	return travelEvent(from, to, feederFeederPartType, distance/travelSpeed, arc)
}

// ClusterEvents produces the PICKUP + per-arc TRAVEL/PLACE sequence for one
// solved cluster route (§4.4 steps 1-2). route.Arcs must be in time order,
// feeder-first; its Time values already carry the routing layer's
// ArcTimePolicy-billed overhead (§4.2, §9), which is what each TRAVEL event
// reports here — PLACE events additionally carry machine.place_time as their
// own entry, exactly as the source's event sequence does (§9, observed
// behaviour preserved verbatim rather than de-duplicated).
func ClusterEvents(feeder domain.Node, route routing.RoutingResult, machine domain.Machine) ([]domain.Event, error) {
	if len(route.Arcs) == 0 {
		return nil, ErrEmptyRoute
	}

	events := make([]domain.Event, 0, 1+2*len(route.Arcs))
	events = append(events, PickupEvent(feeder, machine))

	for _, a := range route.Arcs {
		arc := domain.Arc{XI: a.From.Point.X, YI: a.From.Point.Y, XJ: a.To.Point.X, YJ: a.To.Point.Y, Distance: a.Distance}
		events = append(events, travelEvent(a.From, a.To, a.From.PartType, a.Time, arc))

		if a.To.Kind == domain.PlacementNode {
			events = append(events, PlaceEvent(a.To, machine))
		}
	}

	return events, nil
}
