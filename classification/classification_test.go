package classification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		description string
		table       Table
		options     []Option
		allowed     []string
		review      []string
		handled     []string
		duplicates  []string
	}{
		{
			description: "disjoint sets",
			table: Table{
				"allow":    {"MIT", "Apache-2.0"},
				"review":   {"GPL-2.0-only"},
				"copyleft": {"GPL-2.0-only", "MIT"},
			},
			allowed: []string{"Apache-2.0", "MIT"},
			review:  []string{"GPL-2.0-only"},
			handled: []string{"Apache-2.0", "GPL-2.0-only", "MIT"},
		},
		{
			description: "missing categories yield empty sets",
			table:       Table{"other": {"MIT"}},
			allowed:     []string{},
			review:      []string{},
			handled:     []string{},
		},
		{
			description: "nil table",
			allowed:     []string{},
			review:      []string{},
			handled:     []string{},
		},
		{
			description: "repeated id within one category is not an overlap",
			table:       Table{"allow": {"MIT", "MIT"}},
			allowed:     []string{"MIT"},
			review:      []string{},
			handled:     []string{"MIT"},
		},
		{
			description: "custom categories",
			table:       Table{"permissive": {"MIT"}, "manual": {"EPL-2.0"}, "allow": {"EPL-2.0"}},
			options:     []Option{WithCategories("permissive", "manual")},
			allowed:     []string{"MIT"},
			review:      []string{"EPL-2.0"},
			handled:     []string{"EPL-2.0", "MIT"},
		},
		{
			description: "every overlap is reported",
			table: Table{
				"allow":  {"MIT", "Apache-2.0", "BSD-3-Clause"},
				"review": {"MIT", "BSD-3-Clause", "GPL-3.0-only"},
			},
			duplicates: []string{"BSD-3-Clause", "MIT"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			sets, err := New(testCase.table, testCase.options...)
			if len(testCase.duplicates) > 0 {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrOverlap))
				var duplicateErr *DuplicateError
				require.True(t, errors.As(err, &duplicateErr))
				assert.Equal(t, testCase.duplicates, duplicateErr.Licenses)
				for _, id := range testCase.duplicates {
					assert.Contains(t, err.Error(), id)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.allowed, sets.Allowed().Sorted())
			assert.Equal(t, testCase.review, sets.Review().Sorted())
			assert.Equal(t, testCase.handled, sets.Handled().Sorted())
		})
	}
}

func TestSets_IsHandled(t *testing.T) {
	sets, err := New(Table{
		"allow": {"MIT", "Apache-2.0", "GPL-2.0-only WITH Classpath-exception-2.0", "Classpath-exception-2.0"},
		"review": {
			"GPL-2.0 WITH Classpath-exception",
			"Foo-exception WITH",
			"GPL-2.0 WITH Foo-exception (x",
			"GPL-2.0-only with Classpath-exception-2.0",
			"(MIT WITH Foo-exception) OR Apache-2.0",
		},
	})
	require.NoError(t, err)

	testCases := []struct {
		description string
		license     string
		expected    bool
	}{
		{description: "allowed", license: "MIT", expected: true},
		{description: "unclassified", license: "Foo-1.0", expected: false},
		{description: "allowed exception expression", license: "GPL-2.0-only WITH Classpath-exception-2.0", expected: true},
		{description: "review exception expression", license: "GPL-2.0 WITH Classpath-exception", expected: true},
		{description: "bare exception id", license: "Classpath-exception-2.0", expected: false},
		{description: "unparsable exception without delimited WITH", license: "Foo-exception WITH", expected: false},
		{description: "unparsable exception with delimited WITH", license: "GPL-2.0 WITH Foo-exception (x", expected: true},
		{description: "lower case with is not a delimiter", license: "GPL-2.0-only with Classpath-exception-2.0", expected: false},
		{description: "WITH nested below OR", license: "(MIT WITH Foo-exception) OR Apache-2.0", expected: false},
		{description: "case sensitive membership", license: "mit", expected: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, sets.IsHandled(testCase.license), testCase.description)
	}
}

func TestSets_IsAllowed(t *testing.T) {
	sets, err := New(Table{"allow": {"MIT"}, "review": {"GPL-3.0-only"}})
	require.NoError(t, err)
	assert.True(t, sets.IsAllowed("MIT"))
	assert.False(t, sets.IsAllowed("GPL-3.0-only"))
	assert.True(t, sets.IsReview("GPL-3.0-only"))
	assert.True(t, sets.IsHandled("GPL-3.0-only"))
	assert.False(t, sets.IsAllowed("Apache-2.0"))
}
