package kvcell

import "fmt"

// nowhereID is the reserved node id meaning "no location".
// An address whose ID equals nowhereID is nowhere regardless of its offset.
const nowhereID = ^uint64(0)

// ItemAddr locates an item inside an external container: the id of the node
// holding it and the item's offset within that node. The pair is meaningful
// only relative to the container's own node table.
//
// ItemAddr is a passive handle. It is freely copied and compared with ==;
// it defines no ordering and owns nothing.
type ItemAddr struct {
	ID     uint64
	Offset uint64
}

// Nowhere returns the sentinel address meaning "no location".
func Nowhere() ItemAddr {
	return ItemAddr{ID: nowhereID, Offset: 0}
}

// IsNowhere reports whether the address is the "no location" sentinel.
// Only the node id is inspected; the offset does not matter.
func (a ItemAddr) IsNowhere() bool {
	return a.ID == nowhereID
}

// String renders the address as @{id}:{offset}.
func (a ItemAddr) String() string {
	return fmt.Sprintf("@%d:%d", a.ID, a.Offset)
}
