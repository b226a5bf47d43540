//go:build kvcell_nocheck

package kvcell

// checkInvariants is off: a violated precondition is undefined behavior, as
// in any unchecked slab protocol. Intended for hot-path container builds.
const checkInvariants = false
