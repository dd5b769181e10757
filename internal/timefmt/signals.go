package timefmt

import (
	"errors"
	"os"
	"strings"
)

var errNoLocale = errors.New("no locale in environment")

// SystemSignals builds LocaleSignals from the process environment. The Go
// runtime exposes no resolved hour cycle or locale-aware formatter, so only
// the locale-identifier signal is populated; the earlier cascade steps are
// skipped.
func SystemSignals() LocaleSignals {
	return LocaleSignals{
		LocaleID: func() (string, error) {
			for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
				v := os.Getenv(key)
				if v == "" {
					continue
				}
				// "en_US.UTF-8" -> "en-US"
				if i := strings.IndexByte(v, '.'); i >= 0 {
					v = v[:i]
				}
				return strings.ReplaceAll(v, "_", "-"), nil
			}
			return "", errNoLocale
		},
	}
}
