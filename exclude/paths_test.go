package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths_Match(t *testing.T) {
	paths, err := NewPaths("**/test/**", "docs/*", "", "*.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"**/test/**", "docs/*", "*.md"}, paths.Patterns())

	testCases := []struct {
		path     string
		expected bool
	}{
		{path: "src/test/resources/LICENSE", expected: true},
		{path: "./module/src/test/LICENSE", expected: true},
		{path: "docs/LICENSE", expected: true},
		{path: "docs/nested/LICENSE", expected: false},
		{path: "README.md", expected: true},
		{path: "src/main/LICENSE", expected: false},
		{path: "LICENSE", expected: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, paths.Match(testCase.path), testCase.path)
	}

	var none *Paths
	assert.False(t, none.Match("LICENSE"))
}

func TestNewPaths_Invalid(t *testing.T) {
	_, err := NewPaths("[")
	assert.Error(t, err)
}
