// ABOUTME: Base64 binary encoder
// ABOUTME: Inverse of decode.Base64
package encode

import "encoding/base64"

// Base64 encodes bytes as standard padded base64 text
func Base64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
