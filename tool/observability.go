package tool

// InvokeObservation captures one registry dispatch outcome.
type InvokeObservation struct {
	RequestID  string
	ToolName   string
	DurationMS int64
	Success    bool
	ErrorCode  string
}

// Observer receives dispatch-level observability events. Implementations must
// be safe for concurrent use; the registry calls them inline.
type Observer interface {
	ObserveInvoke(observation InvokeObservation)
}

type noopObserver struct{}

func (noopObserver) ObserveInvoke(InvokeObservation) {}
