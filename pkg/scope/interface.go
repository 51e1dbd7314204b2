package scope

// Manager verifies and creates signed admin session tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New creates a Manager signing with the given HMAC secret key.
func New(secretKey string) Manager {
	return &implManager{secretKey: secretKey}
}
