package i18n

import "os"

// FromEnv returns locale candidates from the POSIX environment, most specific first.
func FromEnv() []string {
	var out []string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			out = append(out, v)
		}
	}
	return out
}
