package conv

const hexDigits = "0123456789ABCDEF"

// U32Hex writes 8-digit uppercase hex without 0x, zero-padded.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexDigits[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// AppendHex32 appends n as 8 uppercase hex digits.
func AppendHex32(dst []byte, n uint32) []byte {
	var tmp [8]byte
	return append(dst, U32Hex(tmp[:], n)...)
}
