package rein

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"
)

// SignatureTTL is how far in the future a signature's expiry is set.
const SignatureTTL = 300 * time.Second

// Signer builds the HMAC authentication headers expected by the API.
type Signer struct {
	clientID string
	secret   string
	database string
}

// NewSigner creates a signer for the given credentials.
func NewSigner(clientID, secret, database string) *Signer {
	return &Signer{clientID: clientID, secret: secret, database: database}
}

// Sign returns the hex HMAC-SHA256 of "{path}.{database}.{expiry}".
// path must be exactly the requested path, without the query string.
func (s *Signer) Sign(path string, expiry int64) string {
	payload := path + "." + s.database + "." + strconv.FormatInt(expiry, 10)

	h := hmac.New(sha256.New, []byte(s.secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

// Headers returns the authentication headers for a request to path made at now.
func (s *Signer) Headers(path string, now time.Time) http.Header {
	expiry := now.Add(SignatureTTL).Unix()

	h := make(http.Header)
	h.Set("Token", s.Sign(path, expiry))
	h.Set("Database", s.database)
	h.Set("Timestamp", strconv.FormatInt(expiry, 10))
	// Assigned directly so the key keeps the casing the API documents.
	h["ClientId"] = []string{s.clientID}
	h.Set("Accept", "application/json")
	return h
}
