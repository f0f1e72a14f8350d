package goquery

import (
	"regexp"
	"strconv"
)

var (
	rxNamedEntity   = regexp.MustCompile(`&(quot|amp|apos|lt|gt);`)
	rxNumericEntity = regexp.MustCompile(`(?i)&#(?:x([0-9a-z]{1,4})|([0-9]{1,4}));`)
)

var namedEntities = map[string]string{
	"quot": `"`,
	"amp":  "&",
	"apos": "'",
	"lt":   "<",
	"gt":   ">",
}

// UnescapeHTMLEntities replaces the five XML named entities and then numeric
// character references (&#NNNN; and &#xHHHH;) with the characters they name.
// The named pass completes before the numeric pass, so "&amp;#65;" becomes
// "A". A numeric reference whose digits cannot be parsed becomes U+0000.
func UnescapeHTMLEntities(s string) string {
	if s == "" {
		return s
	}

	s = rxNamedEntity.ReplaceAllStringFunc(s, func(m string) string {
		return namedEntities[m[1:len(m)-1]]
	})

	return rxNumericEntity.ReplaceAllStringFunc(s, func(m string) string {
		sub := rxNumericEntity.FindStringSubmatch(m)
		if sub[1] != "" {
			return codePoint(sub[1], 16)
		}
		return codePoint(sub[2], 10)
	})
}

func codePoint(digits string, base int) string {
	n, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		n = 0
	}
	return string(rune(n))
}
