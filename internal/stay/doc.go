// Package stay is the stay-overlap, occupancy and billing calculator.
//
// Every function is pure and synchronous: inputs are in-memory snapshots of
// rooms and reservations fetched by the caller, the reference date is passed
// in explicitly and the wall clock is never read. Inputs are assumed to be
// valid (see the Validate* functions in internal/domain).
//
// IsAvailable is a convenience filter for room pickers. It does not prevent
// double booking under concurrent writes; the reservations table carries an
// exclusion constraint for that.
package stay
