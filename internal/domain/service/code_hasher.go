// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CodeHasher digests one-time codes so the plain value is never stored.
type CodeHasher interface {
	// Hash generates a salted digest of code.
	Hash(code string) (string, error)

	// Check compares a plain code with a digest.
	Check(code, digest string) bool
}
