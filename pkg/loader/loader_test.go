package loader

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = "version 15.2\nhostname RouterA\nend\n"

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/configs/router-a.cfg", []byte(testConfig), 0o644))
	require.NoError(t, fs.MkdirAll("/configs/backups", 0o755))
	return fs
}

func TestFromPath(t *testing.T) {
	fs := testFs(t)

	lines, err := FromPath(fs, "/configs/router-a.cfg")
	require.NoError(t, err)
	assert.Equal(t, []string{"version 15.2", "hostname RouterA", "end", ""}, lines)
}

func TestFromPathErrors(t *testing.T) {
	fs := testFs(t)

	tests := []struct {
		name   string
		path   string
		reason string
	}{
		{"missing file", "/configs/does-not-exist.cfg", "does not exist"},
		{"directory", "/configs/backups", "not a regular file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPath(fs, tt.path)
			var lerr *LoadError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, tt.path, lerr.Path)
			assert.Contains(t, lerr.Error(), tt.reason)
		})
	}
}

func TestFromString(t *testing.T) {
	assert.Equal(t,
		[]string{"hostname RouterA", "interface Ethernet0/0", " shutdown"},
		FromString("hostname RouterA\r\ninterface Ethernet0/0\n shutdown"))
}

func TestFromLines(t *testing.T) {
	in := []string{"hostname RouterA", "end"}
	out := FromLines(in)
	assert.Equal(t, in, out)

	out[0] = "mutated"
	assert.Equal(t, "hostname RouterA", in[0], "FromLines must copy the input")
}

func TestDetect(t *testing.T) {
	fs := testFs(t)

	t.Run("multi-line content", func(t *testing.T) {
		lines, err := Detect(fs, "hostname RouterA\nend")
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("existing path", func(t *testing.T) {
		lines, err := Detect(fs, "/configs/router-a.cfg")
		require.NoError(t, err)
		assert.Equal(t, "version 15.2", lines[0])
	})

	t.Run("single line that is not a path", func(t *testing.T) {
		lines, err := Detect(fs, "! This might be a config but not a path")
		require.NoError(t, err)
		assert.Equal(t, []string{"! This might be a config but not a path"}, lines)
	})
}
