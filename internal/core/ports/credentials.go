package ports

import "context"

// CredentialProvider supplies the bearer credential forwarded on
// authenticated store mutations. The credential is issued by an external
// session provider and treated as an opaque string; this core performs no
// validation or refresh of its own.
//
// An empty token means no credential is available: authenticated operations
// must then fail fast with Unauthorized instead of being attempted.
type CredentialProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticCredential is a CredentialProvider that always returns the same
// token. Used when the credential is supplied once at startup.
type StaticCredential string

// AccessToken returns the configured token.
func (c StaticCredential) AccessToken(_ context.Context) (string, error) {
	return string(c), nil
}
