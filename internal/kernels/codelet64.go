package kernels

// Base64 transforms a block of 1<<logN float64 elements using the unrolled
// codelet for that size. The caller guarantees logN is at most 3.
func Base64(buf []float64, logN int) {
	switch logN {
	case 1:
		fht2f64(buf)
	case 2:
		fht4f64(buf)
	case 3:
		fht8f64(buf)
	}
}

// fht2f64 is the size-2 butterfly.
func fht2f64(b []float64) {
	u, v := b[0], b[1]
	b[0] = u + v
	b[1] = u - v
}

// fht4f64 computes the size-4 transform with both stages unrolled.
func fht4f64(b []float64) {
	_ = b[3]

	t0, t1 := b[0]+b[1], b[0]-b[1]
	t2, t3 := b[2]+b[3], b[2]-b[3]

	b[0], b[1] = t0+t2, t1+t3
	b[2], b[3] = t0-t2, t1-t3
}

// fht8f64 computes the size-8 transform fully unrolled. Base case for
// targets whose vector unit holds four doubles.
func fht8f64(b []float64) {
	_ = b[7]

	s0, d0 := b[0]+b[1], b[0]-b[1]
	s1, d1 := b[2]+b[3], b[2]-b[3]
	s2, d2 := b[4]+b[5], b[4]-b[5]
	s3, d3 := b[6]+b[7], b[6]-b[7]

	t0, t1, t2, t3 := s0+s1, d0+d1, s0-s1, d0-d1
	t4, t5, t6, t7 := s2+s3, d2+d3, s2-s3, d2-d3

	b[0], b[1], b[2], b[3] = t0+t4, t1+t5, t2+t6, t3+t7
	b[4], b[5], b[6], b[7] = t0-t4, t1-t5, t2-t6, t3-t7
}
