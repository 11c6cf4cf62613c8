package registry

import (
	"context"
)

const sampleEvent EventID = "someEvent"

type sampleArgs struct {
	value int
}

func recordingHandle(calls *[]string, name string) *Handle {
	return NewHandle(Kind(name), func(ctx context.Context, args any) error {
		*calls = append(*calls, name)
		return nil
	})
}

func kinds(o Observers) []string {
	out := make([]string, 0, len(o))
	for _, h := range o {
		out = append(out, string(h.Kind()))
	}
	return out
}
