// Package service declares the ports the usecases need from infrastructure.
package service

// PasswordHasher stores passwords one way. Check must run in constant time
// relative to the password so login timing does not leak matches.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
