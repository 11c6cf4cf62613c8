package registry

import "github.com/pkg/errors"

var (
	ErrForeignHandle   = errors.New("registry: handle is not registered for the event")
	ErrDuplicateHandle = errors.New("registry: handle listed more than once")
	ErrArgumentType    = errors.New("registry: unexpected argument type")

	ErrConcurrentReorder = errors.New("registry: observers kept changing during reorder")
)
