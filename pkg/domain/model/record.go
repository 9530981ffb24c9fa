package model

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/xeipuuv/gojsonschema"
)

// Record is the only message exchanged through the topic. It is never mutated after construction.
type Record struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

const recordSchema = `{
	"type": "object",
	"properties": {
		"id":      {"type": "integer"},
		"message": {"type": "string"}
	},
	"required": ["id", "message"]
}`

var recordSchemaLoader = gojsonschema.NewStringLoader(recordSchema)

// Payload encodes the record as UTF-8 JSON. A message that is not valid UTF-8 would be altered by
// the JSON encoder, so it is rejected instead.
func (x Record) Payload() ([]byte, error) {
	if !utf8.ValidString(x.Message) {
		return nil, goerr.Wrap(types.ErrEncodeRecord, "message is not valid UTF-8").With("id", x.ID)
	}

	raw, err := json.Marshal(x)
	if err != nil {
		return nil, goerr.Wrap(types.ErrEncodeRecord.Wrap(err), "failed to marshal record").With("id", x.ID)
	}
	return raw, nil
}

// ParseRecord validates data against the record schema and decodes it.
func ParseRecord(data []byte) (*Record, error) {
	result, err := gojsonschema.Validate(recordSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, goerr.Wrap(types.ErrDecodeRecord.Wrap(err), "payload is not valid JSON")
	}
	if !result.Valid() {
		var violations []string
		for _, e := range result.Errors() {
			violations = append(violations, e.String())
		}
		return nil, goerr.Wrap(types.ErrDecodeRecord, "payload does not match record schema").With("violations", violations)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, goerr.Wrap(types.ErrDecodeRecord.Wrap(err), "failed to unmarshal record")
	}
	return &record, nil
}
