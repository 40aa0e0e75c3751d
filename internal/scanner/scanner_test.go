package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/harrison/acrolint/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanFileSingleFinding(t *testing.T) {
	path := writeDoc(t, "a.tex", "Hello\nFOO bar\nok\n")

	result := New(nil, "").ScanFile(path)

	require.True(t, result.HasFindings())
	assert.Equal(t, []models.Finding{{Line: 1, Acronym: "FOO"}}, result.Findings)
	assert.Equal(t, path, result.Path)
}

func TestScanFileAllowedWord(t *testing.T) {
	path := writeDoc(t, "b.tex", "We use BAR here.\n")

	result := New([]string{"BAR"}, "").ScanFile(path)

	require.True(t, result.Clean())
	assert.Equal(t, "No faulty lines found in b.tex", result.Message)
}

func TestScanFileMissing(t *testing.T) {
	result := New(nil, "").ScanFile(filepath.Join(t.TempDir(), "gone.tex"))

	require.True(t, result.Unreadable())
	assert.True(t, errors.Is(result.Err, os.ErrNotExist))
	assert.Empty(t, result.Findings)
}

func TestScanFileInvalidUTF8(t *testing.T) {
	path := writeDoc(t, "bin.tex", "ABC \xff\xfe\n")

	result := New(nil, "").ScanFile(path)

	require.True(t, result.Unreadable())
	assert.Equal(t, ErrInvalidUTF8, result.Err)
	assert.Equal(t, "stream did not contain valid UTF-8", result.Err.Error())
}

func TestScanFilePermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	path := writeDoc(t, "secret.tex", "ABC\n")
	require.NoError(t, os.Chmod(path, 0000))

	result := New(nil, "").ScanFile(path)

	assert.True(t, result.Unreadable())
}

func TestScanLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		allowed []string
		want    []string
	}{
		{"plain acronym", "ABC extra text", nil, []string{"ABC"}},
		{"single letter ignored", "A cat and I", nil, nil},
		{"mixed case word ignored", "NASAs Hello CamelCase", nil, nil},
		{"trailing lowercase ignored", "ABc", nil, nil},
		{"digits join the word", "FOO123 and 42BAR", nil, nil},
		{"underscore joins the word", "FOO_BAR", nil, nil},
		{"hyphen separates", "FOO-BAR", nil, []string{"FOO", "BAR"}},
		{"latex command", `\ref{SEC} and \textbf{API}`, nil, []string{"SEC", "API"}},
		{"allow list is exact", "NASA and NASAX", []string{"NASA"}, []string{"NASAX"}},
		{"allow list is case sensitive", "NASA", []string{"nasa"}, []string{"NASA"}},
		{"unicode uppercase", "\u00c4\u00d6\u00dc und \u00c9T", nil, []string{"\u00c4\u00d6\u00dc", "\u00c9T"}},
		{"single non-ascii letter ignored", "\u00c4 b", nil, nil},
		{"non-ascii lowercase neighbour", "AB\u00e9", nil, nil},
		{"combining mark joins the word", "AB\u0301", nil, nil},
		{"punctuation bounded", "(HTTP), \"TCP\".", nil, []string{"HTTP", "TCP"}},
		{"empty line", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.allowed, "").ScanLine(tt.line)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanTextLastMatchPerLine(t *testing.T) {
	text := "FOO and BAR\nnothing\nBAZ\n"

	result := New(nil, models.MatchModeLastPerLine).ScanText("doc.tex", text)

	assert.Equal(t, []models.Finding{
		{Line: 0, Acronym: "BAR"},
		{Line: 2, Acronym: "BAZ"},
	}, result.Findings)
}

func TestScanTextAllMatches(t *testing.T) {
	text := "FOO and BAR\nnothing\nBAZ\n"

	result := New(nil, models.MatchModeAll).ScanText("doc.tex", text)

	assert.Equal(t, []models.Finding{
		{Line: 0, Acronym: "FOO"},
		{Line: 0, Acronym: "BAR"},
		{Line: 2, Acronym: "BAZ"},
	}, result.Findings)
}

func TestScanTextAllowedLastMatchFallsBack(t *testing.T) {
	// The allowed acronym is filtered before the per-line collapse
	result := New([]string{"BAR"}, "").ScanText("doc.tex", "FOO and BAR\n")

	assert.Equal(t, []models.Finding{{Line: 0, Acronym: "FOO"}}, result.Findings)
}

func TestScanTextLineIndices(t *testing.T) {
	text := "first\r\n\r\nthird ABC\r\n"

	result := New(nil, "").ScanText("crlf.tex", text)

	assert.Equal(t, []models.Finding{{Line: 2, Acronym: "ABC"}}, result.Findings)
}

func TestScanTextEmpty(t *testing.T) {
	result := New(nil, "").ScanText("dir/empty.tex", "")

	require.True(t, result.Clean())
	assert.Equal(t, "No faulty lines found in empty.tex", result.Message)
}

func TestScanTextFindingsSorted(t *testing.T) {
	text := "a\nXY\nb\nZW QR\n"

	result := New(nil, models.MatchModeAll).ScanText("s.tex", text)

	require.Len(t, result.Findings, 3)
	for i := 1; i < len(result.Findings); i++ {
		assert.LessOrEqual(t, result.Findings[i-1].Line, result.Findings[i].Line)
	}
}

func TestScanNeverReportsShortOrAllowed(t *testing.T) {
	allowed := []string{"LaTeX", "PDF", "USA"}
	text := "A PDF from the USA. I am B.\nX Y Z\nAB PDF\n"

	for _, mode := range []models.MatchMode{models.MatchModeLastPerLine, models.MatchModeAll} {
		result := New(allowed, mode).ScanText("p.tex", text)
		for _, f := range result.Findings {
			assert.GreaterOrEqual(t, len([]rune(f.Acronym)), MinAcronymLength)
			assert.NotContains(t, allowed, f.Acronym)
		}
	}
}
