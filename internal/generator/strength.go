package generator

import "unicode/utf8"

// Strength labels.
const (
	LabelWeak   = "Weak"
	LabelFair   = "Fair"
	LabelGood   = "Good"
	LabelStrong = "Strong"
)

// MaxScore is the highest score Strength gives.
const MaxScore = 7

// Rating is the strength of a password.
type Rating struct {
	Score int
	Label string
}

// Strength scores password from 0 to MaxScore: one point each for a length
// of at least 8, 12 and 16 characters, and one point for each of lowercase,
// uppercase, digit and other characters present.
func Strength(password string) Rating {
	score := 0

	n := utf8.RuneCountInString(password)
	for _, threshold := range []int{8, 12, 16} {
		if n >= threshold {
			score++
		}
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	for _, present := range []bool{lower, upper, digit, other} {
		if present {
			score++
		}
	}

	return Rating{Score: score, Label: label(score)}
}

func label(score int) string {
	switch {
	case score <= 2:
		return LabelWeak
	case score <= 4:
		return LabelFair
	case score <= 6:
		return LabelGood
	default:
		return LabelStrong
	}
}
