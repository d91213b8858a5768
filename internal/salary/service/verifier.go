package service

import "github.com/aussiebroadwan/salary/internal/salary/domain"

// VerifyCredentials reports whether login is known to the user source and its
// stored password equals password byte for byte. An empty stored password
// matches an empty password; orphan token rows never match.
func VerifyCredentials(t domain.Table, login, password string) bool {
	rec, ok := t[login]
	if !ok || !rec.FromUserSource() {
		return false
	}
	return rec.Password == password
}
