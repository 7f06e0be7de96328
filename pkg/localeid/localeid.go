// Package localeid parses and serializes locale identifiers in the two
// textual notations used by POSIX/Gettext tooling and by Unicode
// language tags.
//
// # Usage
//
//	loc, err := localeid.ParseGettext("it_IT.utf8@euro")
//	if err != nil {
//	    // handle error
//	}
//	tag, err := loc.UnicodeID()
//
// # Grammar Overview
//
// The two grammars share a record type but not a shape:
//
//	gettext  → language [ "_" territory ] [ "." codeset ] [ "@" modifier ]
//	unicode  → ( "root" | [ language ] [ script ] ) [ region ] variant*
//
// Gettext chunks are alphanumeric and the three separators must appear
// in the order shown, each at most once. Unicode subtags are split on
// "-" or "_" interchangeably and classified positionally, left to
// right, with no backtracking. See gettext.go and unicode.go for the
// detailed rules of each grammar.
//
// All functions are pure over their inputs and the package-level
// crosswalk table, which is never mutated; everything here is safe for
// unrestricted concurrent use.
package localeid

// Locale holds the decomposed chunks of a locale identifier. A Locale
// is produced only by a successful parse and is not modified afterwards
// by this package; serializers only read it.
//
// Every present string field is non-empty. Root is never set together
// with Language or Script, but may coexist with Territory and Variants
// (a root locale with a region override is valid).
type Locale struct {
	// Root marks the Unicode "root" locale.
	Root bool `json:"root,omitempty"`
	// Language is a 2-3 letter language code, or empty.
	Language string `json:"language,omitempty"`
	// Script is a 4-letter script code, or empty. Unicode-only in
	// origin; Gettext serialization maps it through the crosswalk
	// table.
	Script string `json:"script,omitempty"`
	// Territory is a 2-letter or 3-digit region code, or empty.
	Territory string `json:"territory,omitempty"`
	// Codeset is a Gettext-only alphanumeric token, or empty.
	Codeset string `json:"codeset,omitempty"`
	// Modifier is a Gettext-only alphanumeric token, or empty.
	Modifier string `json:"modifier,omitempty"`
	// Variants holds Unicode variant subtags in their original order.
	// Order is significant and duplicates are preserved.
	Variants []string `json:"variants,omitempty"`
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlnum reports whether c is an ASCII letter or digit.
func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
