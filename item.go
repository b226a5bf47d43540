package kvcell

import "cmp"

// Item is one owned key/value pair stored by a container node. Identity is
// the key alone; the value is payload and never participates in comparison.
//
// From construction until one of the consuming operations runs, both slots
// are occupied and every safe accessor may rely on that. The only ways to
// observe a vacant slot are ValueSlot, ForgetValue and IntoInner; a caller
// using them takes over the exactly-once transfer obligation for whatever it
// vacates. See the package documentation for the ownership protocol.
type Item[K, V any] struct {
	key   Slot[K]
	value Slot[V]
}

// New returns an item owning key and value.
func New[K, V any](key K, value V) Item[K, V] {
	return Item[K, V]{
		key:   Filled(key),
		value: Filled(value),
	}
}

// Key returns the item's key.
func (it *Item[K, V]) Key() K {
	return *it.key.Ref()
}

// Value returns the item's value.
func (it *Item[K, V]) Value() V {
	return *it.value.Ref()
}

// ValueRef returns a pointer to the value for in-place mutation without
// replacing its identity. The item stays the owner.
func (it *Item[K, V]) ValueRef() *V {
	return it.value.Ref()
}

// SetValue swaps v in and returns the previous value. No safe caller can
// observe the item without a value; single-writer access is assumed.
func (it *Item[K, V]) SetValue(v V) V {
	return it.value.Replace(v)
}

// ValueSlot exposes the raw value slot, bypassing the occupancy invariant.
//
// This is the escape hatch for relocation and in-place replacement protocols
// that move the value out through one path and write a new one in through
// another, without needing a placeholder of type V. The caller must leave
// the slot occupied again before any safe accessor runs, or retire the item
// through ForgetValue or IntoInner.
func (it *Item[K, V]) ValueSlot() *Slot[V] {
	return &it.value
}

// IntoValue consumes the item: the key is discarded and ownership of the
// value passes to the caller. The item must not be used afterwards.
func (it *Item[K, V]) IntoValue() V {
	it.key.Take()
	return it.value.Take()
}

// ForgetValue consumes the item, discarding the key and leaving the value
// slot untouched. The value must already have been moved out through
// ValueSlot; consuming a still-occupied slot here would lose its value.
func (it *Item[K, V]) ForgetValue() {
	if checkInvariants && it.value.Full() {
		panic("kvcell: ForgetValue with value still present")
	}
	it.key.Take()
}

// IntoInner consumes the item and transfers both slots to the caller
// wholesale, vacating the item without releasing either part. The caller
// becomes responsible for transferring each returned slot's content exactly
// once. The value slot may legitimately be vacant already if it was emptied
// through ValueSlot.
func (it *Item[K, V]) IntoInner() (Slot[K], Slot[V]) {
	if checkInvariants && !it.key.Full() {
		panic("kvcell: IntoInner of consumed item")
	}
	key, value := it.key, it.value
	it.key = Vacant[K]()
	it.value = Vacant[V]()
	return key, value
}

// Compare orders two items by key, delegating to the key type's ordering.
func Compare[K cmp.Ordered, V any](a, b *Item[K, V]) int {
	return cmp.Compare(a.Key(), b.Key())
}

// CompareKey orders an item against a bare key.
func CompareKey[K cmp.Ordered, V any](it *Item[K, V], key K) int {
	return cmp.Compare(it.Key(), key)
}

// Equal reports whether two items hold equal keys. Values are ignored.
func Equal[K comparable, V any](a, b *Item[K, V]) bool {
	return a.Key() == b.Key()
}

// EqualKey reports whether the item's key equals key.
func EqualKey[K comparable, V any](it *Item[K, V], key K) bool {
	return it.Key() == key
}
