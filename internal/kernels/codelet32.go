package kernels

// Base32 transforms a block of 1<<logN float32 elements using the unrolled
// codelet for that size. The caller guarantees logN is at most 4 and that
// buf holds at least 1<<logN elements; no runtime checks beyond the slice
// bound hints.
func Base32(buf []float32, logN int) {
	switch logN {
	case 1:
		fht2f32(buf)
	case 2:
		fht4f32(buf)
	case 3:
		fht8f32(buf)
	case 4:
		fht16f32(buf)
	}
}

// fht2f32 is the size-2 butterfly.
func fht2f32(b []float32) {
	u, v := b[0], b[1]
	b[0] = u + v
	b[1] = u - v
}

// fht4f32 computes the size-4 transform with both stages unrolled.
func fht4f32(b []float32) {
	_ = b[3]

	t0, t1 := b[0]+b[1], b[0]-b[1]
	t2, t3 := b[2]+b[3], b[2]-b[3]

	b[0], b[1] = t0+t2, t1+t3
	b[2], b[3] = t0-t2, t1-t3
}

// fht8f32 computes the size-8 transform fully unrolled. The three butterfly
// stages run back to back on locals without round-tripping through memory.
func fht8f32(b []float32) {
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

// fht16f32 computes the size-16 transform fully unrolled, four stages on
// locals. Used as the base case on targets with 256-bit vector units.
func fht16f32(b []float32) {
	_ = b[15]

	s0, d0 := b[0]+b[1], b[0]-b[1]
	s1, d1 := b[2]+b[3], b[2]-b[3]
	s2, d2 := b[4]+b[5], b[4]-b[5]
	s3, d3 := b[6]+b[7], b[6]-b[7]
	s4, d4 := b[8]+b[9], b[8]-b[9]
	s5, d5 := b[10]+b[11], b[10]-b[11]
	s6, d6 := b[12]+b[13], b[12]-b[13]
	s7, d7 := b[14]+b[15], b[14]-b[15]

	t0, t1, t2, t3 := s0+s1, d0+d1, s0-s1, d0-d1
	t4, t5, t6, t7 := s2+s3, d2+d3, s2-s3, d2-d3
	t8, t9, t10, t11 := s4+s5, d4+d5, s4-s5, d4-d5
	t12, t13, t14, t15 := s6+s7, d6+d7, s6-s7, d6-d7

	u0, u1, u2, u3 := t0+t4, t1+t5, t2+t6, t3+t7
	u4, u5, u6, u7 := t0-t4, t1-t5, t2-t6, t3-t7
	u8, u9, u10, u11 := t8+t12, t9+t13, t10+t14, t11+t15
	u12, u13, u14, u15 := t8-t12, t9-t13, t10-t14, t11-t15

	b[0], b[1], b[2], b[3] = u0+u8, u1+u9, u2+u10, u3+u11
	b[4], b[5], b[6], b[7] = u4+u12, u5+u13, u6+u14, u7+u15
	b[8], b[9], b[10], b[11] = u0-u8, u1-u9, u2-u10, u3-u11
	b[12], b[13], b[14], b[15] = u4-u12, u5-u13, u6-u14, u7-u15
}
