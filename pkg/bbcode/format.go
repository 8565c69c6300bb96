// format.go holds the parameter validators used by the default tags. Every
// helper falls back to a safe value instead of returning an error.
package bbcode

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	urlPattern       = regexp.MustCompile(`^(?:https?|file|c):(?:/{1,3}|\\)[-a-zA-Z0-9:@#%&()~_?+=/\\.]*$`)
	colorNamePattern = regexp.MustCompile(`^(?:red|green|blue|orange|yellow|black|white|brown|gray|silver|purple|maroon|fuchsia|lime|olive|navy|teal|aqua)$`)
	colorCodePattern = regexp.MustCompile(`(?i)^#?(?:[a-f0-9]{6}|[a-f0-9]{3})$`)
	quoteLinkPattern = regexp.MustCompile(`^[-a-zA-Z0-9:@%&()~_?+=/.]+$`)
	markupPattern    = regexp.MustCompile(`<.*?>`)
)

// Defaults substituted for invalid parameters.
const (
	defaultColor       = "black"
	defaultFontSize    = 14
	minFontSize        = 4
	maxFontSize        = 40
	defaultVideoWidth  = 560
	defaultVideoHeight = 315
	maxVideoWidth      = 1000
	maxVideoHeight     = 700
)

// quoteDateLayout renders a Unix timestamp the way quote headers always have.
const quoteDateLayout = "Mon Jan 02 2006, 15:04:05 GMT-0700 (MST)"

// safeURL returns u if it is an allowed link target, otherwise fallback.
func safeURL(u, fallback string) string {
	if !urlPattern.MatchString(u) {
		return fallback
	}
	return u
}

// safeColor accepts a named color or a 3/6 digit hex code (with or without
// '#'), defaulting to black.
func safeColor(c string) string {
	switch {
	case c == "":
		return defaultColor
	case colorNamePattern.MatchString(c):
		return c
	case colorCodePattern.MatchString(c):
		if !strings.HasPrefix(c, "#") {
			c = "#" + c
		}
		return c
	default:
		return defaultColor
	}
}

// fontSize parses the leading integer of s and clamps it to the allowed range.
func fontSize(s string) int {
	n, ok := leadingInt(s)
	if !ok || n < minFontSize || n > maxFontSize {
		return defaultFontSize
	}
	return n
}

// dimension parses a positive pixel size no larger than max.
func dimension(s string, max, fallback int) int {
	n, ok := leadingInt(s)
	if !ok || n <= 0 || n > max {
		return fallback
	}
	return n
}

// stripMarkup removes HTML tags from rendered content.
func stripMarkup(s string) string {
	return markupPattern.ReplaceAllString(s, "")
}

// youtubeEmbed turns a watch URL into its embeddable form. URLs already
// pointing at /embed are returned unchanged; anything without a video ID
// becomes "#".
func youtubeEmbed(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return "#"
	}
	if strings.HasPrefix(u.Path, "/embed") {
		return raw
	}

	host := u.Host
	id := u.Query().Get("v")
	if id == "" && strings.EqualFold(host, "youtu.be") {
		id = strings.Trim(u.Path, "/")
		host = "www.youtube.com"
	}
	if id == "" {
		return "#"
	}
	return u.Scheme + "://" + host + "/embed/" + url.PathEscape(id)
}

// quoteDate formats a Unix timestamp in seconds. ok is false when s is not
// a number.
func quoteDate(s string) (string, bool) {
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", false
	}
	return time.Unix(secs, 0).UTC().Format(quoteDateLayout), true
}
