package digest

// Validate checks hash against the algorithm named by name. It performs no
// I/O and must run before the wordlist is touched.
func Validate(name string, hash string) (Algorithm, error) {
	alg, ok := Resolve(name)
	if !ok {
		return 0, &UnsupportedAlgorithmError{Name: name}
	}
	if err := alg.ValidateHash(hash); err != nil {
		return 0, err
	}
	return alg, nil
}

// ValidateHash reports an *InvalidHashFormatError unless hash is exactly
// HexLen hex digits of either case.
func (a Algorithm) ValidateHash(hash string) error {
	expected := a.HexLen()
	if len(hash) != expected || !isHex(hash) {
		return &InvalidHashFormatError{Expected: expected, Actual: len(hash)}
	}
	return nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
