// Package validation holds the pure input checks shared by the domain
// services: phone format, price and stock bounds.
package validation

import "regexp"

// phonePattern accepts international numbers: optional leading +, first digit
// 1-9, 2 to 15 digits total.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone reports whether s is a well-formed international phone
// number. The empty string is rejected; callers decide whether an absent
// phone is allowed.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidatePrice reports whether p is a valid product price.
func ValidatePrice(p float64) bool {
	return p > 0
}

// ValidateStock reports whether n is a valid stock level.
func ValidateStock(n int) bool {
	return n >= 0
}
