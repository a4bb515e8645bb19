package api

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/2nist/Band-Manager/internal/constants"
)

// sessionIssuer tags tokens minted by this server so stale cookies from
// other deployments on the same host are rejected.
const sessionIssuer = "band-manager"

// sessionClaims is the payload of the HS256 session token stored in the
// bm_session cookie.
type sessionClaims struct {
	Iss  string `json:"iss"`
	Sub  string `json:"sub"`  // account email
	Name string `json:"name"` // display name
	Iat  int64  `json:"iat"`
	Exp  int64  `json:"exp"`
}

// fallbackSecret is generated once per process when SESSION_SECRET is unset,
// so local development works but sessions die with the server.
var fallbackSecret []byte

func getSessionSecret() ([]byte, error) {
	secret := os.Getenv(constants.EnvSessionSecret)
	if secret == "" {
		if len(fallbackSecret) == 0 {
			fallbackSecret = make([]byte, 32)
			if _, err := crand.Read(fallbackSecret); err != nil {
				return nil, errors.New("failed to generate dev session secret")
			}
		}
		return fallbackSecret, nil
	}
	return []byte(secret), nil
}

func b64url(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

func b64urlDecode(s string) ([]byte, error) {
	// pad to multiple of 4
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}
	return base64.URLEncoding.DecodeString(s)
}

func signHS256(data string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(data))
	return b64url(mac.Sum(nil))
}

func createSessionToken(email, name string, ttl time.Duration) (string, error) {
	secret, err := getSessionSecret()
	if err != nil {
		return "", err
	}
	hdrJSON, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	now := time.Now().Unix()
	claims := sessionClaims{
		Iss:  sessionIssuer,
		Sub:  email,
		Name: name,
		Iat:  now,
		Exp:  now + int64(ttl.Seconds()),
	}
	clJSON, _ := json.Marshal(claims)
	unsigned := b64url(hdrJSON) + "." + b64url(clJSON)
	return unsigned + "." + signHS256(unsigned, secret), nil
}

func parseAndValidateSession(token string) (*sessionClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("invalid token format")
	}
	secret, err := getSessionSecret()
	if err != nil {
		return nil, err
	}
	unsigned := parts[0] + "." + parts[1]
	expected := signHS256(unsigned, secret)
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return nil, errors.New("invalid signature")
	}
	payloadBytes, err := b64urlDecode(parts[1])
	if err != nil {
		return nil, err
	}
	var claims sessionClaims
	if err := json.Unmarshal(payloadBytes, &claims); err != nil {
		return nil, err
	}
	if claims.Iss != sessionIssuer {
		return nil, errors.New("token from another issuer")
	}
	if time.Now().Unix() > claims.Exp {
		return nil, errors.New("token expired")
	}
	return &claims, nil
}
