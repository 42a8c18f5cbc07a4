package spdx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    string
		decomposed  []string
		shouldError bool
	}{
		{
			description: "simple license",
			input:       "MIT",
			expected:    "MIT",
			decomposed:  []string{"MIT"},
		},
		{
			description: "surrounding whitespace",
			input:       "  Apache-2.0 ",
			expected:    "Apache-2.0",
			decomposed:  []string{"Apache-2.0"},
		},
		{
			description: "or later",
			input:       "GPL-2.0+",
			expected:    "GPL-2.0+",
			decomposed:  []string{"GPL-2.0+"},
		},
		{
			description: "disjunction",
			input:       "MIT OR Apache-2.0",
			expected:    "MIT OR Apache-2.0",
			decomposed:  []string{"MIT", "Apache-2.0"},
		},
		{
			description: "and binds tighter than or",
			input:       "MIT AND Apache-2.0 OR BSD-3-Clause",
			expected:    "MIT AND Apache-2.0 OR BSD-3-Clause",
			decomposed:  []string{"MIT", "Apache-2.0", "BSD-3-Clause"},
		},
		{
			description: "parenthesised or inside and",
			input:       "(MIT OR Apache-2.0) AND BSD-3-Clause",
			expected:    "(MIT OR Apache-2.0) AND BSD-3-Clause",
			decomposed:  []string{"MIT", "Apache-2.0", "BSD-3-Clause"},
		},
		{
			description: "redundant parentheses are dropped",
			input:       "((MIT))",
			expected:    "MIT",
			decomposed:  []string{"MIT"},
		},
		{
			description: "exception",
			input:       "GPL-2.0-only WITH Classpath-exception-2.0",
			expected:    "GPL-2.0-only WITH Classpath-exception-2.0",
			decomposed:  []string{"GPL-2.0-only WITH Classpath-exception-2.0"},
		},
		{
			description: "lower case operators",
			input:       "gpl-2.0+ with classpath-exception-2.0 or mit",
			expected:    "gpl-2.0+ WITH classpath-exception-2.0 OR mit",
			decomposed:  []string{"gpl-2.0+ WITH classpath-exception-2.0", "mit"},
		},
		{
			description: "duplicates are decomposed once",
			input:       "MIT AND (Apache-2.0 OR MIT)",
			expected:    "MIT AND (Apache-2.0 OR MIT)",
			decomposed:  []string{"MIT", "Apache-2.0"},
		},
		{
			description: "license ref",
			input:       "LicenseRef-scancode-public-domain OR DocumentRef-spdx:LicenseRef-x",
			expected:    "LicenseRef-scancode-public-domain OR DocumentRef-spdx:LicenseRef-x",
			decomposed:  []string{"LicenseRef-scancode-public-domain", "DocumentRef-spdx:LicenseRef-x"},
		},
		{
			description: "operator prefix inside id",
			input:       "MIT OR ORACLE-1.0",
			expected:    "MIT OR ORACLE-1.0",
			decomposed:  []string{"MIT", "ORACLE-1.0"},
		},
		{description: "empty", input: "", shouldError: true},
		{description: "dangling operator", input: "MIT AND", shouldError: true},
		{description: "leading operator", input: "AND MIT", shouldError: true},
		{description: "unclosed parenthesis", input: "(MIT OR Apache-2.0", shouldError: true},
		{description: "unbalanced parenthesis", input: "MIT)", shouldError: true},
		{description: "missing exception", input: "GPL-2.0 WITH", shouldError: true},
		{description: "missing operator", input: "MIT Apache-2.0", shouldError: true},
		{description: "license ref or later", input: "LicenseRef-foo+", shouldError: true},
		{description: "mixed case operator", input: "MIT And Apache-2.0", shouldError: true},
		{description: "mixed case with", input: "GPL-2.0-only With Classpath-exception-2.0", shouldError: true},
		{description: "free text", input: "The Apache Software License, Version 2.0", shouldError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := Parse(testCase.input)
			if testCase.shouldError {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, testCase.expected, actual.String())
			assert.Equal(t, testCase.decomposed, actual.Decompose())
		})
	}
}

func TestIsWith(t *testing.T) {
	assert.True(t, IsWith("GPL-2.0 WITH Classpath-exception"))
	assert.True(t, IsWith("GPL-2.0-or-later WITH GCC-exception-3.1"))
	assert.False(t, IsWith("Classpath-exception-2.0"))
	assert.False(t, IsWith("GPL-2.0 WITH"))
	assert.False(t, IsWith("GPL-2.0 WITH Classpath-exception-2.0 OR MIT"))
}

func TestAnd(t *testing.T) {
	mit, _ := Parse("MIT")
	either, _ := Parse("Apache-2.0 OR BSD-2-Clause")
	assert.Nil(t, And())
	assert.Equal(t, "MIT", And(nil, mit).String())
	assert.Equal(t, "MIT AND (Apache-2.0 OR BSD-2-Clause)", And(mit, either).String())
}
