// Package services – answer label derivation.
//
// The yes/no label stored on every answer (answer_text) is derived here and
// only here, from the boolean value and a locale. Clients may display labels
// however they like, but any label they send is ignored on the wire: the
// server recomputes it so stored reports can never diverge from the booleans
// they describe.
package services

import "golang.org/x/text/language"

// answerLabels holds the yes/no label pairs per supported locale, indexed by
// labelMatcher. Thai is the primary deployment language; English is the
// fallback for unmatched tags.
var answerLabels = [][2]string{
	{"ไม่ใช่", "ใช่"}, // th
	{"No", "Yes"},    // en
}

var labelMatcher = language.NewMatcher([]language.Tag{
	language.Thai,
	language.English,
})

// AnswerLabel returns the localized yes/no label for the given boolean.
// Unknown or undefined tags fall back to Thai, the first matcher entry.
func AnswerLabel(tag language.Tag, answer bool) string {
	_, idx, _ := labelMatcher.Match(tag)
	pair := answerLabels[idx]
	if answer {
		return pair[1]
	}
	return pair[0]
}
