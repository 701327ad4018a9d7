// Package advice turns forecast values into clothing and activity recommendations
package advice

import (
	"strings"
	"unicode"
)

var (
	snowTerms  = []string{"kar", "snow"}
	rainTerms  = []string{"yağmur", "sağanak", "rain"}
	clearTerms = []string{"clear", "açık", "sun"}
)

// mentions reports whether the description contains any of the terms.
// Both plain and Turkish lowercasing are tried so "AÇIK" and "RAIN" both match.
func mentions(description string, terms []string) bool {
	plain := strings.ToLower(description)
	turkish := strings.ToLowerSpecial(unicode.TurkishCase, description)
	for _, term := range terms {
		if strings.Contains(plain, term) || strings.Contains(turkish, term) {
			return true
		}
	}
	return false
}

// IsSnow reports whether a description indicates snow
func IsSnow(description string) bool {
	return mentions(description, snowTerms)
}

// IsRain reports whether a description indicates rain
func IsRain(description string) bool {
	return mentions(description, rainTerms)
}

// IsClear reports whether a description indicates clear or sunny weather
func IsClear(description string) bool {
	return mentions(description, clearTerms)
}
