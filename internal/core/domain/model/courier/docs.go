// Package courier contains the Courier aggregate.
//
// A courier is a delivery resource with a working-hours shift. Whether a
// courier can take a particular route on a particular date is decided by the
// assignment engine: the courier contributes its shift, the engine checks the
// route window against it and against the courier's other deliveries.
package courier
