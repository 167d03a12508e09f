// Package delivery contains the Delivery aggregate, the central entity of the
// courier management domain.
//
// A delivery binds a route to a courier, a vehicle and a date. Its window and
// load totals are derived at creation time by the assignment engine and stored
// on the aggregate so that later invariant checks need no recomputation. The
// status state machine only moves forward: created deliveries may be started
// or cancelled, in-progress deliveries completed or cancelled, and the
// terminal states admit no further transitions.
package delivery
