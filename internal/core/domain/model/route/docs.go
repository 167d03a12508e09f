// Package route contains the Route aggregate and its related value objects.
//
// A Route is immutable reference data: an ordered stop sequence plus the
// time-of-day window the route is expected to run in. A Manifest binds a route
// instance to concrete cargo for one delivery date; the manifest's totals are
// the cargo demand the assignment engine checks against vehicle capacity.
package route
