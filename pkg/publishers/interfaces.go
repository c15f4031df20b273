package publishers

import (
	"context"
	"fmt"
)

// Publisher delivers change events for watched queries to one configured
// sink. The watcher calls Publish from a single goroutine. Sinks that hold
// connections also implement io.Closer and are released by Fanout.Close.
type Publisher interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
}

// label names a sink in errors, e.g. "sqs publisher[orders]".
func label(p Publisher) string {
	return fmt.Sprintf("%s publisher[%s]", p.Type(), p.ID())
}
