// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the courier management system. It implements
// the delivery assignment and validation engine:
//
//   - ConstraintValidator: the feasibility oracle for a single delivery
//     candidate (time-window and capacity checks)
//   - AssignmentPlanner: greedy deterministic allocation of couriers and
//     vehicles to a multi-day batch of routes
//   - LifecycleGuard: the rule layer deciding whether an existing delivery may
//     still be edited or deleted
//
// All services are pure: they operate on snapshots supplied by the caller,
// never perform I/O, and are safe for concurrent use.
package services
