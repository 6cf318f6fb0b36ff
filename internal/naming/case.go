package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CamelCase joins the underscore-separated segments of name, each with its
// first rune upper-cased and the rest lower-cased: "user_profile" becomes
// "UserProfile" and "user_2nd" becomes "User2nd". Empty segments are dropped.
func CamelCase(name string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for seg := range strings.SplitSeq(name, "_") {
		if seg == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(seg)
		b.WriteString(upper.String(seg[:size]))
		b.WriteString(lower.String(seg[size:]))
	}
	return b.String()
}
