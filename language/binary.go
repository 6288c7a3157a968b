package language

// IsBinaryContent reports whether the byte slice looks like binary data.
// It scans the first 512 bytes (or fewer) for null bytes.
func IsBinaryContent(data []byte) bool {
	checkSize := 512
	if len(data) < checkSize {
		checkSize = len(data)
	}

	for i := 0; i < checkSize; i++ {
		if data[i] == 0 {
			return true
		}
	}
	return false
}
