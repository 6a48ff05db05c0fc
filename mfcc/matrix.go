package mfcc

// FrameDuration is the fixed cadence, in seconds, at which every MFCC
// frame in this system is sampled (§3 Data Model).
const FrameDuration = 0.040

// Matrix is a dense row-major (frames × coefficients) buffer of 32-bit
// MFCC features. Frame i occupies Data[i*Coefs : (i+1)*Coefs], which keeps
// the inner dimension contiguous.
//
// Matrix is built once per (text, audio) source and then sliced by the
// stream controller as tails are retained across iterations; Slice
// returns an offset view when possible and only copies when contiguity
// would otherwise be lost (see Design Notes, "Array semantics").
type Matrix struct {
	Frames int
	Coefs  int
	Data   []float32
}

// NewMatrix constructs a Matrix from row-major data, validating shape.
func NewMatrix(frames, coefs int, data []float32) (Matrix, error) {
	m := Matrix{Frames: frames, Coefs: coefs, Data: data}
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}

	return m, nil
}

// Validate checks the Matrix's shape invariants.
func (m Matrix) Validate() error {
	if m.Frames <= 0 {
		return ErrEmptyMatrix
	}
	if len(m.Data) != m.Frames*m.Coefs {
		return ErrBadShape
	}

	return nil
}

// Frame returns the coefficient vector for frame i as a view into Data.
// Callers must not retain the slice past the next mutation of m.
func (m Matrix) Frame(i int) []float32 {
	return m.Data[i*m.Coefs : (i+1)*m.Coefs]
}

// Slice returns the sub-matrix covering frames [from, Frames). It is a
// zero-copy offset view: row-major contiguity is preserved because frames
// are contiguous and we only ever drop a prefix of whole frames.
func (m Matrix) Slice(from int) Matrix {
	if from <= 0 {
		return m
	}
	if from >= m.Frames {
		return Matrix{Frames: 0, Coefs: m.Coefs, Data: nil}
	}

	return Matrix{
		Frames: m.Frames - from,
		Coefs:  m.Coefs,
		Data:   m.Data[from*m.Coefs:],
	}
}

// SameShape reports whether a and b share a coefficient count, which the
// cost kernel requires (§4.1).
func SameShape(a, b Matrix) error {
	if a.Coefs != b.Coefs {
		return ErrCoefMismatch
	}

	return nil
}

// AnchorSet pairs fragment boundary frame indices (on the text axis) with
// their fragment IDs, keeping the two slices from diverging under
// tail-slicing (Design Notes, "Anchor/fragment pair").
type AnchorSet struct {
	// Anchors[i] is the first frame of Fragments[i]; the last fragment
	// extends to the end of the owning text Matrix.
	Anchors   []int
	Fragments []string
}

// NewAnchorSet validates and constructs an AnchorSet against a text frame
// count: anchors must be sorted, in range, start at zero, and parallel to
// fragments.
func NewAnchorSet(anchors []int, fragments []string, textFrames int) (AnchorSet, error) {
	if len(anchors) != len(fragments) {
		return AnchorSet{}, ErrAnchorFragmentMismatch
	}
	if len(anchors) == 0 {
		return AnchorSet{}, ErrAnchorFragmentMismatch
	}
	if anchors[0] != 0 {
		return AnchorSet{}, ErrFirstAnchorNonZero
	}
	for i, a := range anchors {
		if a < 0 || a >= textFrames {
			return AnchorSet{}, ErrAnchorOutOfRange
		}
		if i > 0 && anchors[i] < anchors[i-1] {
			return AnchorSet{}, ErrAnchorsNotSorted
		}
	}

	return AnchorSet{Anchors: anchors, Fragments: fragments}, nil
}

// Len returns the number of anchor/fragment pairs.
func (a AnchorSet) Len() int { return len(a.Anchors) }

// Tail returns the AnchorSet restricted to indices [from, Len()), with
// anchor values shifted by -shift so they remain relative to a sliced
// text Matrix (stream.Controller uses this when a text's tail survives a
// FastDTW-BD call, per §4.5).
func (a AnchorSet) Tail(from, shift int) AnchorSet {
	if from >= a.Len() {
		return AnchorSet{}
	}
	anchors := make([]int, a.Len()-from)
	for i, v := range a.Anchors[from:] {
		anchors[i] = v - shift
	}
	fragments := make([]string, len(a.Fragments)-from)
	copy(fragments, a.Fragments[from:])

	return AnchorSet{Anchors: anchors, Fragments: fragments}
}
