// ABOUTME: Base64 binary decoder
// ABOUTME: Decodes standard-alphabet base64 text into raw bytes
package decode

import (
	"encoding/base64"
	"errors"

	"github.com/harperreed/speechwav/pkg/audio"
)

// Base64 decodes standard base64 text (with padding) into bytes.
// A data: URL prefix must be removed by the caller first.
func Base64(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		offset := int64(-1)
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			offset = int64(corrupt)
		}
		return nil, &audio.DecodeError{Op: "base64", Offset: offset, Err: err}
	}
	return raw, nil
}
