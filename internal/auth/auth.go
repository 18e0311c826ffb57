// Package auth gates the admin back office. There is no user database:
// credentials are a single configured pair, matched locally.
package auth

import (
	"crypto/subtle"

	"go.uber.org/zap"
)

// Guard checks admin credentials.
type Guard struct {
	username string
	password string
	logger   *zap.Logger
}

// New creates a guard for the configured credential pair.
func New(username, password string, logger *zap.Logger) *Guard {
	return &Guard{username: username, password: password, logger: logger}
}

// Login reports whether the supplied credentials match. Comparison is
// constant-time so the check leaks nothing about the configured values.
func (g *Guard) Login(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		g.logger.Warn("admin login rejected", zap.String("username", username))
		return false
	}
	return true
}
