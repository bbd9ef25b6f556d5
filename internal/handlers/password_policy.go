package handlers

import "regexp"

const minPasswordLength = 8

var allDigits = regexp.MustCompile(`^[0-9]+$`)

// checkPasswordPolicy returns an empty string when the password is acceptable,
// otherwise the message to attribute to the password field.
func checkPasswordPolicy(password string) string {
	if len(password) < minPasswordLength {
		return "This password is too short. It must contain at least 8 characters."
	}
	if allDigits.MatchString(password) {
		return "This password is entirely numeric."
	}
	return ""
}
