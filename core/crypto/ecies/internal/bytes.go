package internal

// ZeroPad returns a new slice of the given length holding b right-aligned,
// i.e. left-padded with zero bytes. It returns nil if b is longer than length.
func ZeroPad(b []byte, length int) []byte {
	if len(b) > length {
		return nil
	}

	result := make([]byte, length)
	copy(result[length-len(b):], b)
	return result
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	clear(b)
}
