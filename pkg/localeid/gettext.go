package localeid

import "strings"

// ParseGettext parses a locale identifier in the Gettext notation
// language[_territory][.codeset][@modifier].
//
// The scan is a single left-to-right pass. Every chunk must be
// non-empty and alphanumeric, and the three separators must appear in
// the order _ . @, each at most once. Any other character, an empty
// chunk (adjacent or trailing separators) or a misplaced separator
// fails the whole parse.
func ParseGettext(id string) (*Locale, error) {
	if id == "" {
		return nil, parseError(id, errEmptyInput)
	}

	loc := &Locale{}
	sep := byte(0) // most recent separator seen; 0 while scanning the language
	start := 0
	for i := 0; i <= len(id); i++ {
		atEnd := i == len(id)
		var c byte
		if !atEnd {
			c = id[i]
		}
		switch {
		case atEnd || c == '_' || c == '.' || c == '@':
			chunk := id[start:i]
			if chunk == "" {
				return nil, parseError(id, errEmptyChunk)
			}
			switch sep {
			case 0:
				loc.Language = chunk
			case '_':
				if loc.Territory != "" || loc.Codeset != "" || loc.Modifier != "" {
					return nil, parseError(id, errMisplacedChunk, "territory")
				}
				loc.Territory = chunk
			case '.':
				if loc.Codeset != "" || loc.Modifier != "" {
					return nil, parseError(id, errMisplacedChunk, "codeset")
				}
				loc.Codeset = chunk
			case '@':
				if loc.Modifier != "" {
					return nil, parseError(id, errMisplacedChunk, "modifier")
				}
				loc.Modifier = chunk
			}
			sep = c
			start = i + 1
		case !isAlnum(c):
			return nil, parseError(id, errInvalidChar, rune(c))
		}
	}
	return loc, nil
}

// GettextID renders the record in the Gettext notation. It fails if
// Language is absent.
//
// The @ segment is Modifier when present, otherwise the crosswalk
// modifier for Script when one exists, otherwise it is omitted. Root
// and Variants have no Gettext representation and are dropped: this is
// a deliberately lossy one-way projection, not a round-trip.
func (l *Locale) GettextID() (string, error) {
	if l == nil || l.Language == "" {
		return "", &SerializeError{Notation: "gettext", Message: errNoLanguage}
	}

	var b strings.Builder
	b.WriteString(l.Language)
	if l.Territory != "" {
		b.WriteByte('_')
		b.WriteString(l.Territory)
	}
	if l.Codeset != "" {
		b.WriteByte('.')
		b.WriteString(l.Codeset)
	}
	switch {
	case l.Modifier != "":
		b.WriteByte('@')
		b.WriteString(l.Modifier)
	case l.Script != "":
		if modifier, ok := ScriptToModifier(l.Script); ok {
			b.WriteByte('@')
			b.WriteString(modifier)
		}
	}
	return b.String(), nil
}
