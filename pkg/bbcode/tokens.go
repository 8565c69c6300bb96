// tokens.go defines the token stream produced from escaped BBCode input.
package bbcode

// tokenType represents token types for bracket syntax [tag]...[/tag]
type tokenType int

const (
	tokenText  tokenType = iota // escaped text between tags
	tokenOpen                   // [tag], [tag=value] or [tag key=value ...]
	tokenClose                  // [/tag]
)

// token represents a single token from bracket tag scanning.
type token struct {
	typ    tokenType
	name   string // lowercase tag name as written, set for open/close
	params string // escaped parameter string with its leading "=" or " ", set for open
	text   string // escaped text for text tokens, escaped original tag text otherwise
	pos    int    // byte offset in original input
}
