package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"
)

const minSecretLength = 32

// signer signs session tokens so that a client cannot forge a token it was
// never given. The first secret signs; every secret verifies, which allows
// rotating keys without logging everybody out.
type signer struct {
	secrets [][]byte
}

func newSigner(secrets []string) (*signer, error) {
	s := &signer{}
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		if len(secret) < minSecretLength {
			return nil, ErrSecretTooShort
		}
		s.secrets = append(s.secrets, []byte(secret))
	}
	if len(s.secrets) == 0 {
		return nil, ErrNoSecret
	}
	return s, nil
}

func (s *signer) sign(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + s.mac(s.secrets[0], []byte(value))
}

func (s *signer) verify(signed string) (string, error) {
	encoded, signature, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidToken
	}

	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidToken
	}

	for _, secret := range s.secrets {
		if subtle.ConstantTimeCompare([]byte(signature), []byte(s.mac(secret, value))) == 1 {
			return string(value), nil
		}
	}
	return "", ErrInvalidToken
}

func (s *signer) mac(secret, value []byte) string {
	h := hmac.New(sha256.New, secret)
	h.Write(value)
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// readToken returns the verified token carried by the session cookie.
func (m *Manager) readToken(r *http.Request) (string, error) {
	c, err := r.Cookie(m.config.CookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrSessionNotFound
		}
		return "", err
	}
	return m.signer.verify(c.Value)
}

func (m *Manager) writeToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    m.signer.sign(token),
		Path:     "/",
		MaxAge:   int(m.config.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
