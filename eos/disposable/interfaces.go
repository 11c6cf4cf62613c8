package disposable

// Disposable releases whatever was acquired when it was created.
// Dispose must be safe to call more than once.
type Disposable interface {
	Dispose()
}
