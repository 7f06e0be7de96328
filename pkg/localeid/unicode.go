package localeid

import "strings"

// ParseUnicode parses a Unicode language tag per the language
// identifier grammar of UTS #35
// ( http://unicode.org/reports/tr35/#Unicode_language_identifier ).
//
// The tag is split on "-" or "_" (fully interchangeable) into subtags,
// each of which must be non-empty and alphanumeric. Subtags are then
// classified positionally, left to right, with no backtracking:
//
//	subtags  → "root" rest | [ language ] [ script ] rest
//	rest     → [ region ] variant*
//	language → alpha{2,3}
//	script   → alpha{4}
//	region   → alpha{2} | digit{3}
//	variant  → alnum{5,8} | digit alnum{3}
//
// At least one of root, language or script must be present. A subtag
// left over after the variant run fails the entire parse; there is no
// partial truncation.
func ParseUnicode(id string) (*Locale, error) {
	if id == "" {
		return nil, parseError(id, errEmptyInput)
	}
	subtags, err := splitSubtags(id)
	if err != nil {
		return nil, err
	}

	loc := &Locale{}
	next := 0
	// The root literal is matched case-sensitively; "ROOT" falls
	// through to the language/script path and fails there.
	if subtags[0] == "root" {
		loc.Root = true
		next = 1
	} else {
		if t := subtags[0]; len(t) >= 2 && len(t) <= 3 &&
			isAlpha(t[0]) && isAlpha(t[1]) && (len(t) == 2 || isAlpha(t[2])) {
			loc.Language = t
			next = 1
		}
		if next < len(subtags) && isScriptSubtag(subtags[next]) {
			loc.Script = subtags[next]
			next++
		} else if next == 0 {
			return nil, parseError(id, errNoFirstSubtag)
		}
	}

	// Optional region, a single subtag. Note the 3-character branch
	// requires digits at positions 0-2: the reference implementation
	// instead inspected position 3, one past the end of the subtag,
	// and so could never accept a numeric region. See DESIGN.md.
	if next < len(subtags) {
		t := subtags[next]
		switch {
		case len(t) == 2 && isAlpha(t[0]) && isAlpha(t[1]):
			loc.Territory = t
			next++
		case len(t) == 3 && isDigit(t[0]) && isDigit(t[1]) && isDigit(t[2]):
			loc.Territory = t
			next++
		}
	}

	// Everything left is a variant run, in order, duplicates kept.
	for _, t := range subtags[next:] {
		if !isVariantSubtag(t) {
			return nil, parseError(id, errUnclassifiedChunk, t)
		}
		loc.Variants = append(loc.Variants, t)
	}
	return loc, nil
}

// splitSubtags splits id on "-" or "_" and validates that every subtag
// is non-empty and alphanumeric.
func splitSubtags(id string) ([]string, error) {
	var subtags []string
	start := 0
	for i := 0; i <= len(id); i++ {
		atEnd := i == len(id)
		var c byte
		if !atEnd {
			c = id[i]
		}
		switch {
		case atEnd || c == '-' || c == '_':
			if i == start {
				return nil, parseError(id, errEmptyChunk)
			}
			subtags = append(subtags, id[start:i])
			start = i + 1
		case !isAlnum(c):
			return nil, parseError(id, errInvalidChar, rune(c))
		}
	}
	return subtags, nil
}

// isScriptSubtag reports whether t has the script shape alpha{4}.
func isScriptSubtag(t string) bool {
	return len(t) == 4 &&
		isAlpha(t[0]) && isAlpha(t[1]) && isAlpha(t[2]) && isAlpha(t[3])
}

// isVariantSubtag reports whether t has a variant shape. The subtag is
// already known to be alphanumeric, so only the length and the leading
// digit of the 4-character form need checking. A 4-character
// all-alphabetic subtag is a script shape, never a variant.
func isVariantSubtag(t string) bool {
	switch {
	case len(t) >= 5 && len(t) <= 8:
		return true
	case len(t) == 4:
		return isDigit(t[0])
	default:
		return false
	}
}

// UnicodeID renders the record as a Unicode language tag. It fails if
// none of Root, Language or Script is present; Script may be derived
// from Modifier through the crosswalk table.
//
// Subtags are always joined with "_", regardless of the separator style
// the record was parsed from.
func (l *Locale) UnicodeID() (string, error) {
	if l == nil {
		return "", &SerializeError{Notation: "unicode", Message: errNoFirstSubtag}
	}
	script := l.Script
	if script == "" && l.Modifier != "" {
		if s, ok := ModifierToScript(l.Modifier); ok {
			script = s
		}
	}

	var b strings.Builder
	switch {
	case l.Root:
		b.WriteString("root")
	case l.Language != "":
		b.WriteString(l.Language)
		if script != "" {
			b.WriteByte('_')
			b.WriteString(script)
		}
	case script != "":
		b.WriteString(script)
	default:
		return "", &SerializeError{Notation: "unicode", Message: errNoFirstSubtag}
	}
	if l.Territory != "" {
		b.WriteByte('_')
		b.WriteString(l.Territory)
	}
	for _, v := range l.Variants {
		b.WriteByte('_')
		b.WriteString(v)
	}
	return b.String(), nil
}
