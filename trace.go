package inscribe

// Trace is an optional observer for the largest-rectangle search. Each
// non-nil callback is invoked at a well-defined instrumentation point; when
// no trace is supplied the search pays no cost. Tracing is a pure
// side-channel and never influences the returned result.
type Trace struct {
	// Simplified is called once with the simplified polygon the search
	// operates on.
	Simplified func(Polygon)
	// Origins is called once with the candidate center points, after
	// sampling or after adopting caller-supplied origins.
	Origins func([]Point)
	// Probe is called for every rectangle submitted to the containment
	// test, along with the test's outcome.
	Probe func(Candidate, bool)
}

func (tr *Trace) simplified(p Polygon) {
	if tr != nil && tr.Simplified != nil {
		tr.Simplified(p)
	}
}

func (tr *Trace) origins(pts []Point) {
	if tr != nil && tr.Origins != nil {
		tr.Origins(pts)
	}
}

func (tr *Trace) probe(c Candidate, contained bool) {
	if tr != nil && tr.Probe != nil {
		tr.Probe(c, contained)
	}
}
