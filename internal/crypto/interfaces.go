// Package crypto generates and checks the symmetric keys of the Galaxy
// vault. Galaxy's database vault encrypts with Fernet, whose key is 32
// random bytes in URL-safe base64: 16 bytes signing key, 16 bytes AES key.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/fernet_key_service_mock.go -package=mock

// KeyService hands out and checks vault keys.
type KeyService interface {
	// GenerateKey returns a fresh Fernet key.
	GenerateKey() (string, error)

	// ValidKey reports whether key decodes to a Fernet key.
	ValidKey(key string) bool
}
