package tutor

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultAge is assumed when a grade cannot be read.
const DefaultAge = 8

var chineseDigits = map[rune]int{'一': 1, '二': 2, '三': 3, '四': 4, '五': 5, '六': 6}

// AgeForGrade estimates a child's age from a primary school grade such
// as "3", "三年级" or "grade 2". Grade n maps to age n+6.
func AgeForGrade(grade string) int {
	grade = strings.TrimSpace(grade)
	var digits strings.Builder
	for _, r := range grade {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
			continue
		}
		if digits.Len() > 0 {
			break
		}
		if n, ok := chineseDigits[r]; ok {
			return n + 6
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil || n < 1 || n > 12 {
		return DefaultAge
	}
	return n + 6
}
