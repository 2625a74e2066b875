package cracker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ykhdr/crack-hash/internal/hashcrack/digest"
	"github.com/ykhdr/crack-hash/internal/hashcrack/wordlist"
)

const password123MD5 = "482c811da5d5b4bc6d497ffa98491e38"

type recordingReporter struct {
	events   []string
	start    *StartInfo
	progress []uint64
	outcome  *Outcome
}

func (r *recordingReporter) Start(_ context.Context, info StartInfo) {
	r.events = append(r.events, "start")
	r.start = &info
}

func (r *recordingReporter) Progress(_ context.Context, attempts uint64) {
	r.events = append(r.events, fmt.Sprintf("progress:%d", attempts))
	r.progress = append(r.progress, attempts)
}

func (r *recordingReporter) Finish(_ context.Context, outcome *Outcome) {
	r.events = append(r.events, "finish:"+outcome.Status().String())
	r.outcome = outcome
}

func writeLines(t *testing.T, lines ...string) string {
	t.Helper()
	return writeRaw(t, []byte(strings.Join(lines, "\n")+"\n"))
}

func writeRaw(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("candidate-%d", i+1)
	}
	return lines
}

func TestCrack_Found(t *testing.T) {
	rep := &recordingReporter{}
	path := writeLines(t, "wrong1", "password123", "wrong2")

	out, err := New(WithReporter(rep)).Crack(context.Background(), digest.MD5, password123MD5, path)
	require.NoError(t, err)
	assert.Equal(t, StatusFound, out.Status())
	assert.True(t, out.Found())
	assert.Equal(t, "password123", out.Password())
	assert.Equal(t, uint64(2), out.Stats().Attempts)
	assert.NoError(t, out.Err())

	assert.Equal(t, []string{"start", "finish:found"}, rep.events)
	assert.Equal(t, StartInfo{Algorithm: "MD5", Hash: password123MD5, Wordlist: path}, *rep.start)
	assert.Same(t, out, rep.outcome)
}

func TestCrack_TargetComparedCaseInsensitively(t *testing.T) {
	path := writeLines(t, "wrong1", "password123")

	out, err := New().Crack(context.Background(), digest.MD5, strings.ToUpper(password123MD5), path)
	require.NoError(t, err)
	assert.Equal(t, "password123", out.Password())
}

func TestCrack_TrimmedCandidates(t *testing.T) {
	path := writeRaw(t, []byte("  hello \r\n"))
	target := digest.SHA256.DigestString("hello")

	out, err := New().Crack(context.Background(), digest.SHA256, target, path)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Password())
}

func TestCrack_EmptyLineIsACandidate(t *testing.T) {
	path := writeLines(t, "a", "", "b")

	out, err := New().Crack(context.Background(), digest.SHA1, digest.SHA1.DigestString(""), path)
	require.NoError(t, err)
	require.True(t, out.Found())
	assert.Equal(t, "", out.Password())
	assert.Equal(t, uint64(2), out.Stats().Attempts)
}

func TestCrack_FirstMatchWins(t *testing.T) {
	path := writeLines(t, "x", "dup", "y", "dup")

	out, err := New().Crack(context.Background(), digest.MD5, digest.MD5.DigestString("dup"), path)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), out.Stats().Attempts)
}

func TestCrack_Exhausted(t *testing.T) {
	rep := &recordingReporter{}
	path := writeLines(t, "a", "b", "c")

	out, err := New(WithReporter(rep)).Crack(context.Background(), digest.MD5, password123MD5, path)
	require.NoError(t, err)
	assert.Equal(t, StatusExhausted, out.Status())
	assert.False(t, out.Found())
	assert.Equal(t, uint64(3), out.Stats().Attempts)
	assert.NoError(t, out.Err())
	assert.Equal(t, []string{"start", "finish:exhausted"}, rep.events)
}

func TestCrack_EmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"zero bytes", nil},
		{"only undecodable lines", []byte("\xff\xfe\n\xc3\x28\n")},
	}
	for _, tt := range tests {
		for _, alg := range []digest.Algorithm{digest.MD5, digest.SHA1, digest.SHA256} {
			t.Run(tt.name+"/"+alg.Name(), func(t *testing.T) {
				rep := &recordingReporter{}
				target := strings.Repeat("0", alg.HexLen())

				out, err := New(WithReporter(rep)).Crack(context.Background(), alg, target, writeRaw(t, tt.content))
				require.NoError(t, err)
				assert.Equal(t, StatusEmptyInput, out.Status())
				assert.Zero(t, out.Stats().Attempts)
				assert.ErrorIs(t, out.Err(), EmptyWordlistErr)
				assert.Equal(t, []string{"start", "finish:empty-input"}, rep.events)
			})
		}
	}
}

func TestCrack_UndecodableLinesNotCounted(t *testing.T) {
	path := writeRaw(t, []byte("a\n\xff\nb\n\xfe\nc\n"))

	out, err := New().Crack(context.Background(), digest.MD5, password123MD5, path)
	require.NoError(t, err)
	assert.Equal(t, StatusExhausted, out.Status())
	assert.Equal(t, uint64(3), out.Stats().Attempts)
}

func TestCrack_FileNotFound(t *testing.T) {
	rep := &recordingReporter{}
	path := filepath.Join(t.TempDir(), "missing.txt")

	out, err := New(WithReporter(rep)).Crack(context.Background(), digest.MD5, password123MD5, path)
	assert.Nil(t, out)
	var notFound *wordlist.FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, path, notFound.Path)
	assert.Empty(t, rep.events)
}

func TestCrack_ReadFailure(t *testing.T) {
	rep := &recordingReporter{}

	out, err := New(WithReporter(rep)).Crack(context.Background(), digest.MD5, password123MD5, t.TempDir())
	assert.Nil(t, out)
	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Zero(t, scanErr.Stats.Attempts)
	assert.Error(t, scanErr.Unwrap())
	assert.Equal(t, []string{"start"}, rep.events)
}

func TestCrack_ProgressEveryInterval(t *testing.T) {
	rep := &recordingReporter{}
	path := writeLines(t, numbered(25000)...)

	out, err := New(WithReporter(rep)).Crack(context.Background(), digest.MD5, password123MD5, path)
	require.NoError(t, err)
	assert.Equal(t, uint64(25000), out.Stats().Attempts)
	assert.Equal(t, []uint64{10000, 20000}, rep.progress)
	assert.Equal(t, "finish:exhausted", rep.events[len(rep.events)-1])
}

func TestCrack_ProgressStopsAtMatch(t *testing.T) {
	rep := &recordingReporter{}
	lines := numbered(25000)
	target := digest.SHA1.DigestString(lines[14999])

	out, err := New(WithReporter(rep)).Crack(context.Background(), digest.SHA1, target, writeLines(t, lines...))
	require.NoError(t, err)
	assert.Equal(t, uint64(15000), out.Stats().Attempts)
	assert.Equal(t, []string{"start", "progress:10000", "finish:found"}, rep.events)
}

func TestCrack_ProgressIncludesMatchingAttempt(t *testing.T) {
	rep := &recordingReporter{}
	lines := numbered(10)
	target := digest.MD5.DigestString(lines[3])

	_, err := New(WithReporter(rep), WithProgressInterval(2)).
		Crack(context.Background(), digest.MD5, target, writeLines(t, lines...))
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "progress:2", "progress:4", "finish:found"}, rep.events)
}

func TestCrack_ProgressDisabled(t *testing.T) {
	rep := &recordingReporter{}

	_, err := New(WithReporter(rep), WithProgressInterval(0)).
		Crack(context.Background(), digest.MD5, password123MD5, writeLines(t, numbered(5)...))
	require.NoError(t, err)
	assert.Empty(t, rep.progress)
}

func TestCrack_ElapsedFromStart(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 2 * time.Second)
	}

	out, err := New(withClock(clock)).
		Crack(context.Background(), digest.MD5, password123MD5, writeLines(t, "a", "b", "c", "d"))
	require.NoError(t, err)
	stats := out.Stats()
	assert.Equal(t, base, stats.StartedAt)
	assert.Equal(t, 2*time.Second, stats.Elapsed)
	assert.InDelta(t, 2.0, stats.Rate(), 1e-9)
}

func TestStats_RateZeroElapsed(t *testing.T) {
	assert.Zero(t, Stats{Attempts: 10}.Rate())
}

func TestCracker_Reusable(t *testing.T) {
	c := New()
	path := writeLines(t, "wrong1", "password123")

	for i := 0; i < 2; i++ {
		out, err := c.Crack(context.Background(), digest.MD5, password123MD5, path)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), out.Stats().Attempts)
	}
}
