package publishers

// Logger receives delivery outcomes. *logger.ZapLogger satisfies it.
type Logger interface {
	InfoObj(msg, key string, obj any)
	DebugObj(msg, key string, obj any)
	WarnObj(msg, key string, obj any)
	ErrorObj(msg, key string, obj any)
}

type discardLogger struct{}

func (discardLogger) InfoObj(string, string, any)  {}
func (discardLogger) DebugObj(string, string, any) {}
func (discardLogger) WarnObj(string, string, any)  {}
func (discardLogger) ErrorObj(string, string, any) {}

func orDiscard(log Logger) Logger {
	if log == nil {
		return discardLogger{}
	}
	return log
}

// deliveryFields is the common log payload for one event on one sink.
func deliveryFields(p Publisher, evt Event, extra map[string]any) map[string]any {
	f := map[string]any{
		"publisher_id":   p.ID(),
		"publisher_type": p.Type(),
		"event_id":       evt.ID,
		"query_id":       evt.QueryID,
		"endpoint":       evt.Snapshot.Endpoint,
	}
	for k, v := range extra {
		f[k] = v
	}
	return f
}
