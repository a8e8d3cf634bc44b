package fieldtype

import (
	"fmt"
	"strings"
)

// strptimeDirectives maps the supported strptime conversion specifiers onto
// Go reference-time layout fragments. The set covers the directives that have
// a direct Go equivalent; anything else is rejected at construction.
var strptimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'Z': "MST",
	'z': "Z07:00",
}

// strptimeLayout translates a strptime-style pattern into a Go time layout.
// Date formats are kept in strptime form so definitions written for the
// original constraint language keep working unchanged.
func strptimeLayout(pattern string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch != '%' {
			out.WriteByte(ch)
			continue
		}
		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("trailing %% in date format %q", pattern)
		}
		if pattern[i] == '%' {
			out.WriteByte('%')
			continue
		}
		fragment, ok := strptimeDirectives[pattern[i]]
		if !ok {
			return "", fmt.Errorf("unsupported directive %%%c in date format %q", pattern[i], pattern)
		}
		out.WriteString(fragment)
	}
	return out.String(), nil
}
