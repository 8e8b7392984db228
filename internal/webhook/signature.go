package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the HMAC-SHA256 digest of payload keyed by secret and returns
// it as a lowercase hex string. Signing operates on the exact payload bytes;
// retries reuse the stored bytes so the signature stays verifiable.
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// SignatureHeader formats a signature for the X-Webhook-Signature header.
// Format: "sha256=<hex_signature>"
func SignatureHeader(payload []byte, secret string) string {
	return "sha256=" + Sign(payload, secret)
}

// VerifySignature checks a received signature header against the payload in
// constant time. Receivers embedding this package can use it to authenticate
// inbound deliveries.
func VerifySignature(payload []byte, secret, header string) bool {
	expected := SignatureHeader(payload, secret)
	return hmac.Equal([]byte(expected), []byte(header))
}
