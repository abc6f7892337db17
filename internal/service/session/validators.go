package session

import "strings"

func isValidEmail(email string) bool {
	return strings.Contains(strings.TrimSpace(email), "@")
}

func isValidPassword(password string) bool {
	return password != ""
}
