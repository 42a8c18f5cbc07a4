package licensor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	var testCases = []struct {
		description string
		env         map[string]string
		data        string
		expect      *Config
		hasError    bool
	}{
		{
			description: "defaults",
			data:        `classifications: policy.yml`,
			expect: &Config{
				Classifications: "policy.yml",
				Categories:      Categories{Allow: "allow", Review: "review"},
				Workers:         defaultWorkers,
			},
		},
		{
			description: "json with env",
			env:         map[string]string{"LICENSOR_BUCKET": "s3://compliance"},
			data:        `{"classifications":"${env.LICENSOR_BUCKET}/classifications.json","workers":8,"reportURL":"${env.LICENSOR_BUCKET}/reports"}`,
			expect: &Config{
				Classifications: "s3://compliance/classifications.json",
				Categories:      Categories{Allow: "allow", Review: "review"},
				Workers:         8,
				ReportURL:       "s3://compliance/reports",
			},
		},
		{
			description: "invalid mode",
			data:        "policy:\n  mode: strict\n",
			hasError:    true,
		},
		{
			description: "malformed",
			data:        "workers: [",
			hasError:    true,
		},
	}
	for i, testCase := range testCases {
		for k, v := range testCase.env {
			t.Setenv(k, v)
		}
		URL := "mem://localhost/licensor/config" + strings.Repeat("x", i) + ".yml"
		require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(testCase.data)), testCase.description)
		actual, err := LoadConfig(ctx, fs, URL)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
	_, err := LoadConfig(ctx, fs, "mem://localhost/licensor/missing.yml")
	assert.Error(t, err)
}
