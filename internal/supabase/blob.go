package supabase

import "encoding/base64"

// Blob is the JSON form of a binary payload.
type Blob struct {
	Size   int    `json:"size"`
	Type   string `json:"type"`
	Base64 string `json:"base64"`
}

func NewBlob(data []byte, contentType string) Blob {
	return Blob{
		Size:   len(data),
		Type:   contentType,
		Base64: base64.StdEncoding.EncodeToString(data),
	}
}

// Bytes decodes the payload.
func (b Blob) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(b.Base64)
}
