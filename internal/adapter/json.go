package adapter

import (
	"encoding/json"
)

// JSON abstracts payload encoding and decoding. Webhook payloads are
// marshaled once and stored, so a mockable seam here lets tests assert
// the exact bytes without round-tripping a real encoder.
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// RealJSON encodes through the standard encoding/json package
type RealJSON struct{}

// NewJSON returns the real JSON implementation
func NewJSON() JSON {
	return &RealJSON{}
}

func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
