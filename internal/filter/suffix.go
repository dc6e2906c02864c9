package filter

import "strings"

// Suffix is an allow-list of lowercase file name endings. A nil or empty
// Suffix accepts every name.
type Suffix struct {
	list []string
}

// Parse splits input on spaces and the characters + , : ; | into a
// lowercase suffix list. Empty tokens and repeats are dropped; the
// first-seen order is kept. No wildcards or regular expressions.
func Parse(input string) *Suffix {
	fields := strings.FieldsFunc(strings.ToLower(input), isDelimiter)
	seen := make(map[string]struct{}, len(fields))
	s := &Suffix{}
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		s.list = append(s.list, f)
	}
	return s
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '+', ',', ':', ';', '|':
		return true
	}
	return false
}

// Matches reports whether name ends with one of the suffixes, ignoring case.
// Callers include the leading dot in each suffix (".java"), none is added.
func (s *Suffix) Matches(name string) bool {
	if s.Empty() {
		return true
	}
	lower := strings.ToLower(name)
	for _, suf := range s.list {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}

// Empty reports whether the filter accepts all names.
func (s *Suffix) Empty() bool {
	return s == nil || len(s.list) == 0
}

// List returns a copy of the suffixes in parse order.
func (s *Suffix) List() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.list))
	copy(out, s.list)
	return out
}

func (s *Suffix) String() string {
	return strings.Join(s.List(), " ")
}
