// Package session identifies dashboard clients and keeps their display state.
//
// A client is identified by a random UUID sealed into a Fernet token and
// stored in a cookie. The Registry maps client ids to live dashboard
// sessions and serializes the events of each client.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
)

// Codec seals client ids into cookie values and opens them again.
type Codec struct {
	keys       []*fernet.Key
	cookieName string
	maxAge     time.Duration
}

// GenerateKey returns a new base64 encoded Fernet key.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate session key: %w", err)
	}
	return k.Encode(), nil
}

// NewCodec creates a Codec from encoded Fernet keys. The first key signs new
// tokens; all keys are accepted when opening. Tokens older than maxAge are
// rejected.
func NewCodec(cookieName string, maxAge time.Duration, encodedKeys ...string) (*Codec, error) {
	if len(encodedKeys) == 0 {
		return nil, fmt.Errorf("at least one session key is required")
	}
	keys, err := fernet.DecodeKeys(encodedKeys...)
	if err != nil {
		return nil, fmt.Errorf("invalid session key: %w", err)
	}
	return &Codec{
		keys:       keys,
		cookieName: cookieName,
		maxAge:     maxAge,
	}, nil
}

// NewClientID returns a fresh client id.
func NewClientID() string {
	return uuid.New().String()
}

// Seal encrypts and signs a client id.
func (c *Codec) Seal(clientID string) (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(clientID), c.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to seal session: %w", err)
	}
	return string(tok), nil
}

// Open verifies a sealed token and returns the client id inside it.
// The boolean is false for tampered, expired or malformed tokens.
func (c *Codec) Open(token string) (string, bool) {
	msg := fernet.VerifyAndDecrypt([]byte(token), c.maxAge, c.keys)
	if msg == nil {
		return "", false
	}
	id, err := uuid.ParseBytes(msg)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// ClientID returns the client id carried by the request's session cookie.
// When the cookie is missing or invalid a new id is issued and the cookie is
// written to w.
func (c *Codec) ClientID(w http.ResponseWriter, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(c.cookieName); err == nil {
		if id, ok := c.Open(cookie.Value); ok {
			return id, nil
		}
	}

	id := NewClientID()
	token, err := c.Seal(id)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, nil
}
