package utils

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var strictJson = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// DecodeJsonStrict decodes r into v and fails on fields v does not declare.
func DecodeJsonStrict(r io.Reader, v any) error {
	if err := strictJson.NewDecoder(r).Decode(v); err != nil {
		return errors.WithMessage(err, "decode json")
	}
	return nil
}
