package liftoff

import (
	"regexp"
	"slices"
	"strings"
)

// ConfigNameMatcher recognizes configuration file names of the form
// <base><optional infix><extension>, matched against the whole name.
// Every part is matched literally.
type ConfigNameMatcher struct {
	re *regexp.Regexp
}

// NewConfigNameMatcher returns a matcher for base followed by one of
// infixes (or nothing) and one of extensions.
// With no extensions the matcher matches nothing.
func NewConfigNameMatcher(base string, extensions, infixes []string) *ConfigNameMatcher {
	exts := quoteAll(extensions)
	if len(exts) == 0 {
		return &ConfigNameMatcher{}
	}

	var b strings.Builder
	b.WriteString("^")
	b.WriteString(regexp.QuoteMeta(base))

	if ins := quoteAll(infixes); len(ins) > 0 {
		b.WriteString("(?:")
		b.WriteString(strings.Join(ins, "|"))
		b.WriteString(")?")
	}

	b.WriteString("(")
	b.WriteString(strings.Join(exts, "|"))
	b.WriteString(")$")

	return &ConfigNameMatcher{re: regexp.MustCompile(b.String())}
}

// MatchString reports whether name is an acceptable configuration file name.
func (m *ConfigNameMatcher) MatchString(name string) bool {
	if m == nil || m.re == nil {
		return false
	}

	return m.re.MatchString(name)
}

// String returns the pattern, or "" when the matcher matches nothing.
func (m *ConfigNameMatcher) String() string {
	if m == nil || m.re == nil {
		return ""
	}

	return m.re.String()
}

// MarshalText implements encoding.TextMarshaler.
func (m *ConfigNameMatcher) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// quoteAll returns the sorted, de-duplicated, quoted non-empty strings of in.
func quoteAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, regexp.QuoteMeta(s))
		}
	}

	slices.Sort(out)

	return slices.Compact(out)
}
