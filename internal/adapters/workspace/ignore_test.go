package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreSetMatch(t *testing.T) {
	t.Parallel()

	set, err := NewIgnoreSet([]string{"node_modules", "**/*.min.js", "build/**", ""})
	require.NoError(t, err)

	tests := []struct {
		rel  string
		want bool
	}{
		{rel: "node_modules", want: true},
		{rel: "packages/web/node_modules", want: true},
		{rel: "dist/app.min.js", want: true},
		{rel: "app.min.js", want: true},
		{rel: "build/out/index.js", want: true},
		{rel: "src/app.js", want: false},
		{rel: "buildtools", want: false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, set.Match(tc.rel), tc.rel)
	}
}

func TestNewIgnoreSetRejectsInvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewIgnoreSet([]string{"src/[unterminated"})
	require.Error(t, err)
}
