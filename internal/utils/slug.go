package utils

import "strings"

// Slugify выводит идентификатор записи каталога из её label:
// нижний регистр, все не-алфавитно-цифровые последовательности -> "-".
// "Baby Shower" -> "baby-shower"
func Slugify(label string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
