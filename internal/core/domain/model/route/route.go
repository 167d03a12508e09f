package route

import (
	"errors"
	"sort"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/errs"
	"couriermanagement/internal/pkg/guard"
)

// Domain errors for route operations.
var (
	// ErrRouteNameIsRequired is returned when attempting to create a route without a name.
	ErrRouteNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStopsAreRequired is returned when attempting to create a route without stops.
	ErrStopsAreRequired = errs.NewValueIsRequiredError("stops")
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
)

// Route is an aggregate root describing a predefined delivery path: an ordered
// stop sequence and the expected execution window within a day.
//
// Routes are immutable reference data. The assignment engine instantiates a
// route against a concrete date and manifest to form a delivery candidate; the
// route itself never changes.
//
// Key responsibilities:
//   - Holding the stop sequence in visit order
//   - Defining the time-of-day window the route runs in
//
// Example usage:
//
//	window, _ := kernel.NewTimeWindow(nine, twelve)
//	route, err := NewRoute(kernel.NewUUID(), "Morning city loop", window, stops)
//	if err != nil {
//	    // handle construction error
//	}
type Route struct {
	id     kernel.UUID
	name   string
	window kernel.TimeWindow
	stops  []*Stop

	guard guard.ConstructorGuard
}

// NewRoute creates a Route with the specified parameters. Name must be
// non-empty, the window valid, and at least one stop supplied. Stops are
// ordered by their sequence number regardless of input order.
func NewRoute(id kernel.UUID, name string, window kernel.TimeWindow, stops []*Stop) (*Route, error) {
	r := &Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setWindow(window),
		r.setStops(stops),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route aggregate from persistent storage.
func RestoreRoute(id kernel.UUID, name string, window kernel.TimeWindow, stops []*Stop) (*Route, error) {
	return NewRoute(id, name, window, stops)
}

// Validate checks that the Route was created through its constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Name returns the human-readable route name.
func (r *Route) Name() string {
	return r.name
}

// Window returns the time-of-day window the route is expected to run in.
func (r *Route) Window() kernel.TimeWindow {
	return r.window
}

// Stops returns the route's stops in visit order.
func (r *Route) Stops() []*Stop {
	return r.stops
}

// IsEqual compares routes by identity.
func (r *Route) IsEqual(other *Route) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	if name == "" {
		return ErrRouteNameIsRequired
	}

	r.name = name
	return nil
}

func (r *Route) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	r.window = window
	return nil
}

func (r *Route) setStops(stops []*Stop) error {
	if len(stops) == 0 {
		return ErrStopsAreRequired
	}

	for _, s := range stops {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	ordered := make([]*Stop, len(stops))
	copy(ordered, stops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Sequence() < ordered[j].Sequence()
	})

	r.stops = ordered
	return nil
}
