package fhir_dto

import (
	"errors"
	"fmt"
)

// Codec failures represent programmer error in a caller, not bad external
// data; they are the only errors raised anywhere in the conversion layer.
var (
	ErrUnsupportedValueType = errors.New("unsupported extension value type")
	ErrMalformedExtension   = errors.New("extension must populate exactly one value field")
)

// URL marks a string that encodes as valueUrl rather than valueString.
type URL string

// Extension carries a domain field that has no first-class slot in the
// standard resource shape. Exactly one value field is populated per
// extension; the url acts as the key.
type Extension struct {
	Url             string      `json:"url"`
	ValueString     *string     `json:"valueString,omitempty"`
	ValueInteger    *int        `json:"valueInteger,omitempty"`
	ValueDecimal    *float64    `json:"valueDecimal,omitempty"`
	ValueUrl        *string     `json:"valueUrl,omitempty"`
	ValueAttachment interface{} `json:"valueAttachment,omitempty"`
}

// EncodeExtension selects the value field from the runtime type of value.
// Appointment document lists ride as a single valueAttachment holding an
// array of stubs; that deviation from one-value-per-extension is a wire
// compatibility requirement.
func EncodeExtension(url string, value interface{}) (Extension, error) {
	ext := Extension{Url: url}
	switch v := value.(type) {
	case string:
		ext.ValueString = &v
	case URL:
		s := string(v)
		ext.ValueUrl = &s
	case int:
		ext.ValueInteger = &v
	case int32:
		n := int(v)
		ext.ValueInteger = &n
	case int64:
		n := int(v)
		ext.ValueInteger = &n
	case float32:
		f := float64(v)
		ext.ValueDecimal = &f
	case float64:
		ext.ValueDecimal = &v
	case Attachment, []Attachment, AttachmentStub, []AttachmentStub:
		ext.ValueAttachment = v
	default:
		return Extension{}, fmt.Errorf("%w: %T", ErrUnsupportedValueType, value)
	}
	return ext, nil
}

// FindExtension returns the first extension matching url, or nil. Multiple
// extensions sharing a URL is undefined behavior upstream; first wins.
func FindExtension(extensions []Extension, url string) *Extension {
	for i := range extensions {
		if extensions[i].Url == url {
			return &extensions[i]
		}
	}
	return nil
}

// DecodeExtensionValue returns whichever value field is populated, failing
// when none or more than one is set.
func DecodeExtensionValue(ext Extension) (interface{}, error) {
	var (
		value interface{}
		count int
	)
	if ext.ValueString != nil {
		value = *ext.ValueString
		count++
	}
	if ext.ValueInteger != nil {
		value = *ext.ValueInteger
		count++
	}
	if ext.ValueDecimal != nil {
		value = *ext.ValueDecimal
		count++
	}
	if ext.ValueUrl != nil {
		value = URL(*ext.ValueUrl)
		count++
	}
	if ext.ValueAttachment != nil {
		value = ext.ValueAttachment
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("%w: %q has %d", ErrMalformedExtension, ext.Url, count)
	}
	return value, nil
}
