// Package state holds hoisted UI state.
//
// A Store owns the mutable values of one component subtree: bounded
// counters, boolean flags and collections of items keyed by stable id. It is
// created by the lowest common ancestor of everything that reads or writes
// those values. Descendants receive current values and callbacks, never the
// store itself.
//
// Mutations are total. A counter refuses to move past its bounds, and a
// missing id is ignored. Every change publishes a notification so that
// dependents can rebuild from the new values:
//
//	store := state.NewStore("water")
//	count := store.DeclareCounter("count", 10, state.Durable)
//	store.AddListener(func() { rebuild() })
//	count.Increment()
//
// # Durability
//
// Each value is declared Durable or Ephemeral. Durable values are captured by
// Snapshot and survive reconstruction of the presentation tree (a rotation,
// a resize); ephemeral values return to their declared default. Neither
// survives process restart. A Registry owned by the host collects snapshots
// across a reconstruction and hands them back to the stores that are
// recreated with the same scope.
//
// Stores are not safe for concurrent use. All access happens on the UI loop.
package state
