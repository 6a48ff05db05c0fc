package fastdtw

import "github.com/katalvlaran/syncalign/mfcc"

// downsample halves a Matrix by averaging consecutive frame pairs (§4.3
// step 1). An odd trailing frame is carried through unaveraged rather
// than dropped, so no information is discarded at either sequence's end.
func downsample(m mfcc.Matrix) mfcc.Matrix {
	if m.Frames == 0 {
		return m
	}

	outFrames := (m.Frames + 1) / 2
	data := make([]float32, outFrames*m.Coefs)
	for i := 0; i < outFrames; i++ {
		lo, hi := 2*i, 2*i+1
		dst := data[i*m.Coefs : (i+1)*m.Coefs]
		if hi < m.Frames {
			a, b := m.Frame(lo), m.Frame(hi)
			for c := range dst {
				dst[c] = (a[c] + b[c]) / 2
			}
		} else {
			copy(dst, m.Frame(lo))
		}
	}

	out, err := mfcc.NewMatrix(outFrames, m.Coefs, data)
	if err != nil {
		// outFrames is always >= 1 here since m.Frames > 0, and data is
		// exactly outFrames*Coefs long, so Validate cannot fail.
		panic(err)
	}

	return out
}
