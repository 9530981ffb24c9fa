package testutil

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
)

// Transcode copies src into dst through JSON, as a policy engine does with its query output.
func Transcode(t *testing.T, dst, src any) {
	t.Helper()

	raw := gt.R1(json.Marshal(src)).NoError(t)
	gt.NoError(t, json.Unmarshal(raw, dst))
}

func DecodeJSON[T any](t *testing.T, src []byte) T {
	t.Helper()

	var data T
	gt.NoError(t, json.Unmarshal(src, &data))
	return data
}
