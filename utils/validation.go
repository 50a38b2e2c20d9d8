package utils

import (
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail vérifie que l'adresse email a un format valide
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
