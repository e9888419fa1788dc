package kernels

// combineScalar64 is the portable combine loop.
func combineScalar64(lo, hi []float64) {
	for i := range lo {
		u, v := lo[i], hi[i]
		lo[i] = u + v
		hi[i] = u - v
	}
}

// combine2x64 processes the combine step in 2-lane chunks, matching
// 128-bit vector units that hold two doubles.
func combine2x64(lo, hi []float64) {
	i := 0
	n := len(lo)

	for ; i+2 <= n; i += 2 {
		a := lo[i : i+2 : i+2]
		b := hi[i : i+2 : i+2]

		s0, d0 := a[0]+b[0], a[0]-b[0]
		s1, d1 := a[1]+b[1], a[1]-b[1]

		a[0], a[1] = s0, s1
		b[0], b[1] = d0, d1
	}

	if i < n {
		u, v := lo[i], hi[i]
		lo[i] = u + v
		hi[i] = u - v
	}
}

// combine4x64 processes the combine step in 4-lane chunks with a scalar
// remainder.
func combine4x64(lo, hi []float64) {
	i := 0
	n := len(lo)

	for ; i+4 <= n; i += 4 {
		a := lo[i : i+4 : i+4]
		b := hi[i : i+4 : i+4]

		s0, d0 := a[0]+b[0], a[0]-b[0]
		s1, d1 := a[1]+b[1], a[1]-b[1]
		s2, d2 := a[2]+b[2], a[2]-b[2]
		s3, d3 := a[3]+b[3], a[3]-b[3]

		a[0], a[1], a[2], a[3] = s0, s1, s2, s3
		b[0], b[1], b[2], b[3] = d0, d1, d2, d3
	}

	for ; i < n; i++ {
		u, v := lo[i], hi[i]
		lo[i] = u + v
		hi[i] = u - v
	}
}
