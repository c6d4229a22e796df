package stretch

// Path identifies one measurement path through the wire cross-section.
// Sample positions are fixed in the undeformed reference configuration,
// so the sampling geometry never changes across frames; only the field
// values at those positions vary.
type Path struct {
	Name string
}

// FieldSource is the read-only view of the simulation result store.
// Both operations must be idempotent: re-querying the same (path, frame)
// returns identical data. The probe cache in SearchOnset relies on this.
type FieldSource interface {
	// FieldSamples returns the monitored scalar field (strain) sampled
	// along the path at the given frame. The slice length equals the
	// path's fixed sample count and is at least 2. An out-of-range frame
	// yields an error; it is propagated, never retried.
	FieldSamples(path Path, frame int) ([]float64, error)

	// MonitorValue returns the independent load value (e.g. the U1
	// displacement of the tracked substrate node) at the given frame.
	MonitorValue(frame int) (float64, error)
}
