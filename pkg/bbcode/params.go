package bbcode

import "strings"

// ParamValue returns the parameter string without its leading "=" or space.
// For [color=red] it returns "red".
func ParamValue(params string) string {
	if params == "" {
		return ""
	}
	return params[1:]
}

// ParseOptions parses space-separated key=value pairs, as in
// [quote author=xyz date=1380953499]. Tokens without "=" or with an empty key
// are ignored. The first "=" separates key from value.
//
// A bare [tag=value] parameter yields no options.
func ParseOptions(params string) map[string]string {
	opts := make(map[string]string)
	fields := strings.Split(params, " ")
	if len(fields) < 2 {
		return opts
	}
	for _, f := range fields {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			continue
		}
		opts[key] = value
	}
	return opts
}

// leadingInt parses an optionally signed run of digits at the start of s,
// after leading spaces. ok is false when there are no digits.
func leadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n > 1<<30 {
			break
		}
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
