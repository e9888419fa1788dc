package kernels

// combineScalar32 is the portable combine loop.
func combineScalar32(lo, hi []float32) {
	for i := range lo {
		u, v := lo[i], hi[i]
		lo[i] = u + v
		hi[i] = u - v
	}
}

// combine4x32 processes the combine step in 4-lane chunks with a scalar
// remainder. The chunk body is written over fixed-length reslices so the
// compiler can drop bounds checks and vectorize the straight-line loads.
func combine4x32(lo, hi []float32) {
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

// combine8x32 processes the combine step in 8-lane chunks with a scalar
// remainder.
func combine8x32(lo, hi []float32) {
	i := 0
	n := len(lo)

	for ; i+8 <= n; i += 8 {
		a := lo[i : i+8 : i+8]
		b := hi[i : i+8 : i+8]

		s0, d0 := a[0]+b[0], a[0]-b[0]
		s1, d1 := a[1]+b[1], a[1]-b[1]
		s2, d2 := a[2]+b[2], a[2]-b[2]
		s3, d3 := a[3]+b[3], a[3]-b[3]
		s4, d4 := a[4]+b[4], a[4]-b[4]
		s5, d5 := a[5]+b[5], a[5]-b[5]
		s6, d6 := a[6]+b[6], a[6]-b[6]
		s7, d7 := a[7]+b[7], a[7]-b[7]

		a[0], a[1], a[2], a[3] = s0, s1, s2, s3
		a[4], a[5], a[6], a[7] = s4, s5, s6, s7
		b[0], b[1], b[2], b[3] = d0, d1, d2, d3
		b[4], b[5], b[6], b[7] = d4, d5, d6, d7
	}

	for ; i < n; i++ {
		u, v := lo[i], hi[i]
		lo[i] = u + v
		hi[i] = u - v
	}
}
