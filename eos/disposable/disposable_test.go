package disposable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisposable_CallsCallbackOnce(t *testing.T) {
	calls := 0
	d := NewDisposable(func() { calls++ })
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, calls)
}

func TestDisposable_NilCallback(t *testing.T) {
	d := NewDisposable(nil)
	d.Dispose() // should not panic
}

func TestCompositeDisposable_DisposesInReverseOrder(t *testing.T) {
	var order []int
	composite := NewCompositeDisposable(
		NewDisposable(func() { order = append(order, 1) }),
		NewDisposable(func() { order = append(order, 2) }),
	)
	composite.Add(NewDisposable(func() { order = append(order, 3) }))
	composite.Dispose()
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestCompositeDisposable_DisposeIsIdempotent(t *testing.T) {
	calls := 0
	composite := NewCompositeDisposable(NewDisposable(func() { calls++ }))
	composite.Dispose()
	composite.Dispose()
	assert.Equal(t, 1, calls)
}

func TestCompositeDisposable_AddAfterDisposeDisposesImmediately(t *testing.T) {
	composite := NewCompositeDisposable()
	composite.Dispose()
	called := false
	composite.Add(NewDisposable(func() { called = true }))
	assert.True(t, called)
}

func TestCompositeDisposable_SkipsNilDelegates(t *testing.T) {
	calls := 0
	composite := NewCompositeDisposable(nil, NewDisposable(func() { calls++ }))
	composite.Dispose()
	assert.Equal(t, 1, calls)
}

func TestCompositeDisposable_TypedNilDelegates(t *testing.T) {
	calls := 0
	var missing *DisposableImp
	var missingComposite *CompositeDisposableImp
	composite := NewCompositeDisposable(missing, missingComposite, NewDisposable(func() { calls++ }))
	assert.NotPanics(t, composite.Dispose)
	assert.Equal(t, 1, calls)
}
