package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePathWithinDirectory(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, ValidatePathWithinDirectory(filepath.Join(dir, "out.png"), dir))
	assert.NoError(t, ValidatePathWithinDirectory(filepath.Join(dir, "sub", "out.png"), dir))

	assert.Error(t, ValidatePathWithinDirectory(filepath.Join(dir, "..", "escape.png"), dir))
	assert.Error(t, ValidatePathWithinDirectory("/etc/passwd", dir))
}

func TestValidatePathWithinDirectorySymlinkEscape(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(outside, link))

	assert.Error(t, ValidatePathWithinDirectory(filepath.Join(link, "out.png"), dir))
}

func TestValidateArtifactPath(t *testing.T) {
	assert.NoError(t, ValidateArtifactPath(filepath.Join(os.TempDir(), "edges.png")))
	assert.NoError(t, ValidateArtifactPath("report.html"))
	assert.Error(t, ValidateArtifactPath("/etc/passwd"))
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "unknown"},
		{"sketch.png", "sketch.png"},
		{"my sketch (v2).png", "my_sketch_v2_.png"},
		{"../../etc/passwd", "etc_passwd"},
		{"___", "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}
