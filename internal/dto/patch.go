package dto

// Patch is one field of a partial update. A zero Patch leaves the field untouched,
// a Patch with Null set clears it and any other set Patch assigns Value.
type Patch[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Set returns a Patch assigning v.
func Set[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Value: v}
}

// Null returns a Patch clearing the field.
func Null[T any]() Patch[T] {
	return Patch[T]{Set: true, Null: true}
}

// value returns the field value as it goes on the wire or into a column: nil for Null.
func (p Patch[T]) value() interface{} {
	if p.Null {
		return nil
	}
	return p.Value
}

// Ptr returns nil for an unset or Null patch and a pointer to Value otherwise.
func (p Patch[T]) Ptr() *T {
	if !p.Set || p.Null {
		return nil
	}
	v := p.Value
	return &v
}
