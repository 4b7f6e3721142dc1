package sol

// u29decode reads an AMF3 variable-length unsigned integer from the start
// of b. The first three bytes contribute seven bits each and continue
// while the high bit is set; a fourth byte contributes all eight bits and
// always terminates. Returns the value and the number of bytes consumed.
func u29decode(b []byte) (int, int, error) {
	n := 0
	for i := 0; i < 3; i++ {
		if i >= len(b) {
			return 0, 0, ErrBufferUnderrun
		}
		c := b[i]
		n = n<<7 | int(c&0x7f)
		if c&0x80 == 0 {
			return n, i + 1, nil
		}
	}
	if len(b) < 4 {
		return 0, 0, ErrBufferUnderrun
	}
	return n<<8 | int(b[3]), 4, nil
}

// u29encode appends the minimal 1-4 byte form of n to by.
func u29encode(by []byte, n int) ([]byte, error) {
	switch {
	case n < 0 || n > u29Max:
		return nil, ErrValueOutOfRange
	case n < 0x80:
		return append(by, byte(n)), nil
	case n < 0x4000:
		return append(by, byte(n>>7)|0x80, byte(n)&0x7f), nil
	case n < 0x200000:
		return append(by, byte(n>>14)|0x80, byte(n>>7)&0x7f|0x80, byte(n)&0x7f), nil
	default:
		return append(by, byte(n>>22)&0x7f|0x80, byte(n>>15)&0x7f|0x80, byte(n>>8)&0x7f|0x80, byte(n)), nil
	}
}
