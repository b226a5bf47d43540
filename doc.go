// Package kvcell provides the storage cell primitive for slab-based ordered
// containers.
//
// A container (typically a B-tree variant) owns arrays of cells per node and
// addresses each cell by the id of the node holding it plus its offset within
// that node. This package supplies the two building blocks such a container
// needs, and nothing else:
//
//   - ItemAddr: a copyable node-id/offset handle with a reserved "nowhere"
//     value. The container allocates and interprets addresses; the cell types
//     here never store or compute one.
//
//   - Item: an owned key/value pair whose identity is its key alone. During
//     normal operation both parts are always present and reachable through
//     the safe accessors. For structural changes (relocation, deletion,
//     in-place replacement) the container can decompose an item into raw
//     slots or vacate its value slot directly, without requiring the key or
//     value type to be copyable or to have a usable zero value.
//
// # Ownership Protocol
//
// Item and Slot track presence explicitly: every value is transferred out of
// its slot exactly once, and the state machine makes double transfer and
// use-after-consume detectable. By default every precondition is checked and
// a violation panics. Containers that have validated their relocation
// protocol can build with the kvcell_nocheck tag to compile the checks away
// on the hot path.
//
// # Concurrency
//
// None. A cell expects exclusive single-writer access at any instant;
// whatever locking discipline the owning container uses must guarantee it.
package kvcell
