package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleObservers(names ...string) Observers {
	var calls []string
	out := make(Observers, 0, len(names))
	for _, name := range names {
		out = append(out, recordingHandle(&calls, name))
	}
	return out
}

func TestOrdering_Reverse(t *testing.T) {
	o := sampleObservers("a", "b", "c")
	assert.Equal(t, []string{"c", "b", "a"}, kinds(Reverse(o)))
	assert.Equal(t, []string{"a", "b", "c"}, kinds(o))
	assert.Empty(t, Reverse(nil))
}

func TestOrdering_Identity(t *testing.T) {
	o := sampleObservers("a", "b")
	assert.Equal(t, kinds(o), kinds(Identity(o)))
}

func TestOrdering_KindsFirst(t *testing.T) {
	o := sampleObservers("obj1", "plain", "obj2", "obj3", "obj2")
	ordered := KindsFirst("obj2", "obj3", "obj1")(o)
	assert.Equal(t, []string{"obj2", "obj2", "obj3", "obj1", "plain"}, kinds(ordered))
}

func TestOrdering_KindsFirstIgnoresRepeatedKinds(t *testing.T) {
	o := sampleObservers("a", "b")
	ordered := KindsFirst("b", "b")(o)
	assert.Equal(t, []string{"b", "a"}, kinds(ordered))
}

func TestOrdering_OnlyKinds(t *testing.T) {
	o := sampleObservers("obj1", "plain", "obj2", "obj3")
	assert.Equal(t, []string{"obj2", "obj3", "obj1"}, kinds(OnlyKinds("obj2", "obj3", "obj1")(o)))
	assert.Empty(t, OnlyKinds("missing")(o))
}

func TestOrdering_Chain(t *testing.T) {
	o := sampleObservers("a", "b", "c")
	ordered := Chain(OnlyKinds("a", "c"), nil, Reverse)(o)
	assert.Equal(t, []string{"c", "a"}, kinds(ordered))
}

func TestObservers_FindAndFilter(t *testing.T) {
	o := sampleObservers("a", "b", "c")
	h, ok := o.Find(func(h *Handle) bool { return h.Kind() == "b" })
	assert.True(t, ok)
	assert.Equal(t, 1, o.Index(h))

	_, ok = o.Find(func(h *Handle) bool { return h.Kind() == "z" })
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "c"}, kinds(o.Filter(func(h *Handle) bool { return h.Kind() != "b" })))
}

func TestObservers_VerifySubset(t *testing.T) {
	o := sampleObservers("a", "b")
	stranger := sampleObservers("x")[0]

	assert.NoError(t, o.verifySubset(Observers{o[1], o[1]}, false))
	assert.ErrorIs(t, o.verifySubset(Observers{o[1], o[1]}, true), ErrDuplicateHandle)
	assert.ErrorIs(t, o.verifySubset(Observers{stranger}, false), ErrForeignHandle)
	assert.ErrorIs(t, o.verifySubset(Observers{nil}, false), ErrForeignHandle)
	assert.NoError(t, o.verifySubset(Observers{}, true))
}
