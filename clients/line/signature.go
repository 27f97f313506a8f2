package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// VerifySignature checks that rawBody was signed by the LINE platform using
// the shared channel secret. The platform sends base64(HMAC-SHA256(body))
// in the x-line-signature header.
//
// The comparison is constant-time with respect to the secret-derived digest.
// Returns false on any malformed input, including an empty header or secret;
// it never returns an error and performs no I/O.
func VerifySignature(rawBody []byte, signatureHeader, channelSecret string) bool {
	if signatureHeader == "" || channelSecret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signatureHeader))
}
