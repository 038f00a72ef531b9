package browse

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const embedEndpoint = "https://www.facebook.com/plugins/post.php"

// Label formats a lowercased tag or zone for display by upper-casing its
// first letter only. "one piece" becomes "One piece".
func Label(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// componentUnescaper undoes the escapes url.QueryEscape applies to the marks
// that URI-component encoding leaves literal, and turns "+" back into "%20".
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EmbedURL returns the post-plugin preview URL for a booth's post link.
// The link is escaped as a URI component: spaces become %20, and the marks
// ! ' ( ) * stay literal.
func EmbedURL(postURL string) string {
	return embedEndpoint + "?href=" + escapeComponent(postURL) + "&width=500"
}

func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
