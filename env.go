package licensor

import (
	"os"
	"strings"
	"unicode"
)

const envPrefix = "${env."

// expandEnv replaces ${env.KEY} with the KEY environment variable value, unset
// variables expand to an empty string. Malformed expressions are kept as is.
func expandEnv(text string) string {
	if !strings.Contains(text, envPrefix) {
		return text
	}
	var b strings.Builder
	for {
		idx := strings.Index(text, envPrefix)
		if idx < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:idx])
		rest := text[idx+len(envPrefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(text[idx:])
			return b.String()
		}
		key := rest[:end]
		if !isEnvKey(key) {
			b.WriteString(envPrefix)
			text = rest
			continue
		}
		b.WriteString(os.Getenv(key))
		text = rest[end+1:]
	}
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
