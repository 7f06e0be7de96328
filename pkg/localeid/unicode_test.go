package localeid_test

import (
	"sync"
	"testing"

	"github.com/mlocati/gettext-unicode-locale-id/pkg/localeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnicode(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want localeid.Locale
	}{
		{
			name: "language only",
			id:   "it",
			want: localeid.Locale{Language: "it"},
		},
		{
			name: "three letter language",
			id:   "nap",
			want: localeid.Locale{Language: "nap"},
		},
		{
			name: "language and region",
			id:   "it-IT",
			want: localeid.Locale{Language: "it", Territory: "IT"},
		},
		{
			name: "underscore separators",
			id:   "it_IT",
			want: localeid.Locale{Language: "it", Territory: "IT"},
		},
		{
			name: "mixed separators",
			id:   "it_Latn-IT",
			want: localeid.Locale{Language: "it", Script: "Latn", Territory: "IT"},
		},
		{
			name: "language and script",
			id:   "it-Latn",
			want: localeid.Locale{Language: "it", Script: "Latn"},
		},
		{
			name: "language script region variants",
			id:   "it-Latn-IT-POSIX-NYNORSK",
			want: localeid.Locale{Language: "it", Script: "Latn", Territory: "IT", Variants: []string{"POSIX", "NYNORSK"}},
		},
		{
			name: "script only",
			id:   "Latn",
			want: localeid.Locale{Script: "Latn"},
		},
		{
			name: "script region variants without language",
			id:   "Latn-IT-POSIX",
			want: localeid.Locale{Script: "Latn", Territory: "IT", Variants: []string{"POSIX"}},
		},
		{
			name: "variants without region",
			id:   "it-POSIX-NYNORSK",
			want: localeid.Locale{Language: "it", Variants: []string{"POSIX", "NYNORSK"}},
		},
		{
			name: "digit-led four character variant",
			id:   "it-IT-1abc",
			want: localeid.Locale{Language: "it", Territory: "IT", Variants: []string{"1abc"}},
		},
		{
			name: "duplicate variants preserved",
			id:   "it-POSIX-POSIX",
			want: localeid.Locale{Language: "it", Variants: []string{"POSIX", "POSIX"}},
		},
		{
			name: "root",
			id:   "root",
			want: localeid.Locale{Root: true},
		},
		{
			name: "root with region",
			id:   "root-IT",
			want: localeid.Locale{Root: true, Territory: "IT"},
		},
		{
			name: "root with region and variant",
			id:   "root-IT-POSIX",
			want: localeid.Locale{Root: true, Territory: "IT", Variants: []string{"POSIX"}},
		},
		{
			name: "uppercase ROOT is a script not root",
			id:   "ROOT",
			want: localeid.Locale{Script: "ROOT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := localeid.ParseUnicode(tt.id)
			require.NoError(t, err)
			require.NotNil(t, loc)
			assert.Equal(t, tt.want, *loc)
		})
	}
}

func TestParseUnicodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "whitespace", id: " "},
		{name: "double whitespace", id: "  "},
		{name: "at sign", id: "foo@bar@baz"},
		{name: "trailing separator", id: "it-"},
		{name: "leading separator", id: "-it"},
		{name: "adjacent separators", id: "it--IT"},
		{name: "root cannot take a script", id: "root-Latn"},
		{name: "no language script or root", id: "1"},
		{name: "digit-led first subtag", id: "1abc"},
		{name: "four letter subtag in variant position", id: "it-IT-abcd"},
		{name: "three letter leftover subtag", id: "it-IT-abc"},
		{name: "nine character variant", id: "it-abcdefghi"},
		{name: "non-alphabetic short first subtag", id: "a1-IT"},
		{name: "embedded NUL byte", id: "it\x00IT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := localeid.ParseUnicode(tt.id)
			require.Error(t, err)
			assert.ErrorIs(t, err, localeid.ErrInvalid)
			assert.Nil(t, loc)
		})
	}
}

// The reference implementation checked a digit one position past the
// end of a 3-character region subtag and therefore rejected every
// numeric region. The intended digit{3} rule is implemented instead;
// this test pins the changed acceptance.
func TestParseUnicodeNumericRegion(t *testing.T) {
	loc, err := localeid.ParseUnicode("en-123")
	require.NoError(t, err)
	assert.Equal(t, localeid.Locale{Language: "en", Territory: "123"}, *loc)

	loc, err = localeid.ParseUnicode("root-419")
	require.NoError(t, err)
	assert.Equal(t, localeid.Locale{Root: true, Territory: "419"}, *loc)

	_, err = localeid.ParseUnicode("en-12x")
	assert.ErrorIs(t, err, localeid.ErrInvalid)
}

func TestUnicodeID(t *testing.T) {
	tests := []struct {
		name string
		loc  localeid.Locale
		want string
	}{
		{
			name: "language script region variants",
			loc:  localeid.Locale{Language: "it", Script: "Latn", Territory: "IT", Variants: []string{"POSIX", "NYNORSK"}},
			want: "it_Latn_IT_POSIX_NYNORSK",
		},
		{
			name: "language only",
			loc:  localeid.Locale{Language: "it"},
			want: "it",
		},
		{
			name: "script only",
			loc:  localeid.Locale{Script: "Latn"},
			want: "Latn",
		},
		{
			name: "modifier derives the script",
			loc:  localeid.Locale{Language: "it", Modifier: "latin"},
			want: "it_Latn",
		},
		{
			name: "modifier alone derives a leading script",
			loc:  localeid.Locale{Modifier: "latin"},
			want: "Latn",
		},
		{
			name: "unknown modifier is dropped",
			loc:  localeid.Locale{Language: "it", Modifier: "euro"},
			want: "it",
		},
		{
			name: "root",
			loc:  localeid.Locale{Root: true},
			want: "root",
		},
		{
			name: "root with region",
			loc:  localeid.Locale{Root: true, Territory: "IT"},
			want: "root_IT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loc.UnicodeID()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnicodeIDMissingFirstSubtag(t *testing.T) {
	tests := []struct {
		name string
		loc  *localeid.Locale
	}{
		{name: "nil record", loc: nil},
		{name: "empty record", loc: &localeid.Locale{}},
		{name: "territory only", loc: &localeid.Locale{Territory: "IT"}},
		{name: "unknown modifier only", loc: &localeid.Locale{Modifier: "euro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loc.UnicodeID()
			require.Error(t, err)
			assert.ErrorIs(t, err, localeid.ErrIncomplete)
			assert.Empty(t, got)
		})
	}
}

// Serializing a parsed tag must be stable: reparsing the output and
// serializing again yields the same string.
func TestUnicodeRoundTripStable(t *testing.T) {
	ids := []string{
		"it",
		"it-IT",
		"it_IT",
		"it-Latn",
		"it-Latn-IT",
		"it-Latn-IT-POSIX-NYNORSK",
		"Latn",
		"Latn-IT-POSIX",
		"root",
		"root-IT",
		"en-123",
		"it-IT-1abc",
	}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			loc, err := localeid.ParseUnicode(id)
			require.NoError(t, err)
			first, err := loc.UnicodeID()
			require.NoError(t, err)

			reparsed, err := localeid.ParseUnicode(first)
			require.NoError(t, err)
			second, err := reparsed.UnicodeID()
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestParseConcurrent(t *testing.T) {
	const numGoroutines = 50
	ids := []string{"it-Latn-IT-POSIX", "it_IT.utf8@euro", "root-IT"}

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range ids {
				if loc, err := localeid.ParseUnicode(id); err == nil {
					_, _ = loc.UnicodeID()
					_, _ = loc.GettextID()
				}
				if loc, err := localeid.ParseGettext(id); err == nil {
					_, _ = loc.GettextID()
					_, _ = loc.UnicodeID()
				}
			}
		}()
	}
	wg.Wait()
}
