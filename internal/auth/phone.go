package auth

import "regexp"

// phonePattern matches mainland China mobile numbers.
var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// ValidPhone reports whether phone is a well-formed mobile number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
