package flatland

// ScannerArray is an ordered, immutable set of scanner x-positions on the
// y = 0 line. Order matters: Scan's output is parallel to construction
// order.
type ScannerArray struct {
	positions []float64
}

// NewScannerArray copies positions (in caller-supplied order) into a new,
// immutable ScannerArray.
func NewScannerArray(positions []float64) *ScannerArray {
	owned := make([]float64, len(positions))
	copy(owned, positions)
	return &ScannerArray{positions: owned}
}

// NumScanners returns the number of scanners.
func (s *ScannerArray) NumScanners() int {
	return len(s.positions)
}

// Positions returns a copy of the scanner x-positions, in construction
// order.
func (s *ScannerArray) Positions() []float64 {
	out := make([]float64, len(s.positions))
	copy(out, s.positions)
	return out
}

// Scan produces one distance reading per scanner, against cluster, in
// construction order. If the cluster reports impact, every entry of the
// result is NaN - each entry already carries that sentinel from
// AsteroidCluster.Scan, so no extra propagation step is needed here.
func (s *ScannerArray) Scan(cluster *AsteroidCluster) []float64 {
	out := make([]float64, len(s.positions))
	for i, x := range s.positions {
		out[i] = cluster.Scan(x, 0)
	}
	return out
}
