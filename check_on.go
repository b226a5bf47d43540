//go:build !kvcell_nocheck

package kvcell

// checkInvariants gates the ownership-protocol assertions. Checks are on by
// default; build with the kvcell_nocheck tag to compile them away once the
// owning container's relocation protocol is trusted.
const checkInvariants = true
