// Package digest resolves hash algorithms by name and validates target
// hashes against them.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Algorithm is one of the closed set of supported digests. The zero value
// is not a valid algorithm.
type Algorithm int

const (
	MD5 Algorithm = iota + 1
	SHA1
	SHA256
)

var algorithms = []Algorithm{MD5, SHA1, SHA256}

// Supported returns the accepted identifiers in their canonical lowercase form.
func Supported() []string {
	ids := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		ids = append(ids, a.Id())
	}
	return ids
}

// Resolve matches name case-insensitively against the supported identifiers.
func Resolve(name string) (Algorithm, bool) {
	switch strings.ToLower(name) {
	case "md5":
		return MD5, true
	case "sha1":
		return SHA1, true
	case "sha256":
		return SHA256, true
	default:
		return 0, false
	}
}

// Id is the canonical lowercase identifier, e.g. "sha256".
func (a Algorithm) Id() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	default:
		return ""
	}
}

// Name is the display name, e.g. "SHA256".
func (a Algorithm) Name() string {
	return strings.ToUpper(a.Id())
}

func (a Algorithm) String() string {
	return a.Name()
}

// HexLen is the length of a digest in hex characters.
func (a Algorithm) HexLen() int {
	switch a {
	case MD5:
		return md5.Size * 2
	case SHA1:
		return sha1.Size * 2
	case SHA256:
		return sha256.Size * 2
	default:
		return 0
	}
}

// Digest returns the lowercase hex digest of input. Calling it on an invalid
// Algorithm panics.
func (a Algorithm) Digest(input []byte) string {
	switch a {
	case MD5:
		sum := md5.Sum(input)
		return hex.EncodeToString(sum[:])
	case SHA1:
		sum := sha1.Sum(input)
		return hex.EncodeToString(sum[:])
	case SHA256:
		sum := sha256.Sum256(input)
		return hex.EncodeToString(sum[:])
	default:
		panic("digest: invalid algorithm")
	}
}

func (a Algorithm) DigestString(input string) string {
	return a.Digest([]byte(input))
}
