package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want Algorithm
	}{
		{"md5", MD5},
		{"MD5", MD5},
		{"Md5", MD5},
		{"sha1", SHA1},
		{"SHA256", SHA256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, ok := Resolve(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, alg)
		})
	}
}

func TestResolve_Unsupported(t *testing.T) {
	for _, name := range []string{"", "sha512", "unsupported", " md5"} {
		_, ok := Resolve(name)
		assert.False(t, ok, name)
	}
}

func TestAlgorithm_Names(t *testing.T) {
	assert.Equal(t, "MD5", MD5.Name())
	assert.Equal(t, "SHA1", SHA1.Name())
	assert.Equal(t, "SHA256", SHA256.Name())
	assert.Equal(t, []string{"md5", "sha1", "sha256"}, Supported())
}

func TestAlgorithm_KnownVectors(t *testing.T) {
	tests := []struct {
		alg   Algorithm
		input string
		want  string
	}{
		{MD5, "hello", "5d41402abc4b2a76b9719d911017c592"},
		{MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{MD5, "password123", "482c811da5d5b4bc6d497ffa98491e38"},
		{SHA1, "hello", "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{SHA1, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{SHA256, "hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}
	for _, tt := range tests {
		t.Run(tt.alg.Name()+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.alg.DigestString(tt.input))
		})
	}
}

func TestAlgorithm_DigestShape(t *testing.T) {
	inputs := []string{"", "a", "Password!", strings.Repeat("x", 1000), "пароль"}
	for _, alg := range algorithms {
		for _, in := range inputs {
			first := alg.DigestString(in)
			assert.Equal(t, first, alg.DigestString(in), "digest must be deterministic")
			assert.Len(t, first, alg.HexLen())
			assert.Equal(t, strings.ToLower(first), first)
			assert.True(t, isHex(first))
		}
	}
}

func TestAlgorithm_HexLen(t *testing.T) {
	assert.Equal(t, 32, MD5.HexLen())
	assert.Equal(t, 40, SHA1.HexLen())
	assert.Equal(t, 64, SHA256.HexLen())
}

func TestAlgorithm_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { Algorithm(0).Digest(nil) })
}
