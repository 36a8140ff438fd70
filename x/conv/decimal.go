package conv

// AppendDecimal appends n scaled down by 10^frac with exactly frac digits
// after the point: AppendDecimal(nil, 43392, 2) == "433.92".
func AppendDecimal(dst []byte, n int64, frac int) []byte {
	if frac <= 0 {
		return AppendInt(dst, n)
	}
	if n < 0 {
		dst = append(dst, '-')
		n = -n
	}
	var tmp [20]byte
	digits := Utoa(tmp[:], uint64(n))
	// Left-pad so there is at least one integer digit.
	for len(digits) <= frac {
		i := len(tmp) - len(digits) - 1
		tmp[i] = '0'
		digits = tmp[i:]
	}
	cut := len(digits) - frac
	dst = append(dst, digits[:cut]...)
	dst = append(dst, '.')
	return append(dst, digits[cut:]...)
}
