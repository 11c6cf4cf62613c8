package disposable

import "sync"

type DisposableImp struct {
	once     sync.Once
	callback func()
}

func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

// Dispose runs the callback on the first call. A nil *DisposableImp is a no-op.
func (d *DisposableImp) Dispose() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		if d.callback != nil {
			d.callback()
		}
	})
}

// CompositeDisposableImp disposes its delegates in reverse order of addition.
type CompositeDisposableImp struct {
	mu        sync.Mutex
	delegates []Disposable
	disposed  bool
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

// Add appends delegates. Delegates added after Dispose are disposed immediately.
func (d *CompositeDisposableImp) Add(delegates ...Disposable) {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		disposeReversed(delegates)
		return
	}
	d.delegates = append(d.delegates, delegates...)
	d.mu.Unlock()
}

func (d *CompositeDisposableImp) Dispose() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.disposed = true
	delegates := d.delegates
	d.delegates = nil
	d.mu.Unlock()
	disposeReversed(delegates)
}

func disposeReversed(delegates []Disposable) {
	for i := len(delegates) - 1; i >= 0; i-- {
		if delegates[i] != nil {
			delegates[i].Dispose()
		}
	}
}
