package gcp_test

import (
	"errors"
	"strings"
	"testing"

	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/psdemo/pkg/domain/model"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
	"github.com/m-mizutani/psdemo/pkg/infra/gcp"
)

func TestEncode(t *testing.T) {
	msg := gt.R1(gcp.Encode(&model.Record{ID: 1, Message: "message"})).NoError(t)
	gt.Equal(t, string(msg.Data), `{"id":1,"message":"message"}`)
	gt.Equal(t, len(msg.Attributes), 0)
}

func TestEncodeDecode(t *testing.T) {
	for _, record := range []model.Record{
		{ID: 1, Message: "message"},
		{ID: 0, Message: ""},
		{ID: 12, Message: "line\nbreak\rcarriage\x1fescape"},
	} {
		msg := gt.R1(gcp.Encode(&record)).NoError(t)
		decoded := gt.R1(gcp.Decode(msg)).NoError(t)
		gt.Equal(t, *decoded, record)
	}
}

func TestEncodeError(t *testing.T) {
	_, err := gcp.Encode(nil)
	gt.Equal(t, errors.Is(err, types.ErrEncodeRecord), true)

	_, err = gcp.Encode(&model.Record{ID: 1, Message: "\xc3\x28"})
	gt.Equal(t, errors.Is(err, types.ErrEncodeRecord), true)
}

func TestDecodeError(t *testing.T) {
	_, err := gcp.Decode(&pubsub.Message{ID: "m1", Data: []byte("test")})
	gt.Equal(t, errors.Is(err, types.ErrDecodeRecord), true)
	gt.Equal(t, strings.HasPrefix(err.Error(), "failed to decode message: "), true)

	_, err = gcp.Decode(nil)
	gt.Equal(t, errors.Is(err, types.ErrDecodeRecord), true)
}
