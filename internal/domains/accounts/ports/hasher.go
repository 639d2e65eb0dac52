package ports

// PasswordHasher is the one-way credential hashing collaborator used at
// registration and login.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Compare(hash, raw string) error
}
