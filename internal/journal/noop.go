package journal

// NoopRecorder is used when no journal database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAdjustment(_ *AdjustmentEvent) error { return nil }
func (n *NoopRecorder) RecordDrop(_ *DropEvent) error             { return nil }
func (n *NoopRecorder) Close() error                              { return nil }
