package fhir_dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testExtensionURL = "https://fhir.pawcare.io/StructureDefinition/pet-type"

func TestEncodeExtension(t *testing.T) {
	t.Run("String Becomes ValueString", func(t *testing.T) {
		ext, err := EncodeExtension(testExtensionURL, "dog")

		assert.NoError(t, err)
		assert.Equal(t, testExtensionURL, ext.Url)
		if assert.NotNil(t, ext.ValueString) {
			assert.Equal(t, "dog", *ext.ValueString)
		}
		assert.Nil(t, ext.ValueInteger)
		assert.Nil(t, ext.ValueDecimal)
		assert.Nil(t, ext.ValueUrl)
		assert.Nil(t, ext.ValueAttachment)
	})

	t.Run("URL Type Becomes ValueUrl Not ValueString", func(t *testing.T) {
		ext, err := EncodeExtension(testExtensionURL, URL("https://pawcare.io"))

		assert.NoError(t, err)
		assert.Nil(t, ext.ValueString)
		if assert.NotNil(t, ext.ValueUrl) {
			assert.Equal(t, "https://pawcare.io", *ext.ValueUrl)
		}
	})

	t.Run("Integer Widths Become ValueInteger", func(t *testing.T) {
		for _, value := range []interface{}{int(4), int32(4), int64(4)} {
			ext, err := EncodeExtension(testExtensionURL, value)

			assert.NoError(t, err)
			if assert.NotNil(t, ext.ValueInteger) {
				assert.Equal(t, 4, *ext.ValueInteger)
			}
		}
	})

	t.Run("Float Becomes ValueDecimal", func(t *testing.T) {
		ext, err := EncodeExtension(testExtensionURL, 12.971599)

		assert.NoError(t, err)
		if assert.NotNil(t, ext.ValueDecimal) {
			assert.Equal(t, 12.971599, *ext.ValueDecimal)
		}
	})

	t.Run("Attachment Stub List Becomes ValueAttachment", func(t *testing.T) {
		stubs := []AttachmentStub{
			{ContentType: "application/pdf", Title: "vaccination card"},
			{ContentType: "image/png", Title: "x-ray"},
		}

		ext, err := EncodeExtension(testExtensionURL, stubs)

		assert.NoError(t, err)
		assert.Equal(t, stubs, ext.ValueAttachment)
	})

	t.Run("Unsupported Type Fails", func(t *testing.T) {
		_, err := EncodeExtension(testExtensionURL, true)

		assert.ErrorIs(t, err, ErrUnsupportedValueType)
	})
}

func TestDecodeExtensionValue(t *testing.T) {
	t.Run("Single Populated Field Decodes", func(t *testing.T) {
		ext, err := EncodeExtension(testExtensionURL, "dog")
		assert.NoError(t, err)

		value, err := DecodeExtensionValue(ext)

		assert.NoError(t, err)
		assert.Equal(t, "dog", value)
	})

	t.Run("ValueUrl Decodes As URL Type", func(t *testing.T) {
		ext, err := EncodeExtension(testExtensionURL, URL("https://pawcare.io"))
		assert.NoError(t, err)

		value, err := DecodeExtensionValue(ext)

		assert.NoError(t, err)
		assert.Equal(t, URL("https://pawcare.io"), value)
	})

	t.Run("No Populated Field Fails", func(t *testing.T) {
		_, err := DecodeExtensionValue(Extension{Url: testExtensionURL})

		assert.ErrorIs(t, err, ErrMalformedExtension)
	})

	t.Run("Two Populated Fields Fail", func(t *testing.T) {
		text := "dog"
		age := 4

		_, err := DecodeExtensionValue(Extension{
			Url:          testExtensionURL,
			ValueString:  &text,
			ValueInteger: &age,
		})

		assert.ErrorIs(t, err, ErrMalformedExtension)
	})
}

func TestFindExtension(t *testing.T) {
	t.Run("First Match Wins", func(t *testing.T) {
		first, _ := EncodeExtension(testExtensionURL, "dog")
		second, _ := EncodeExtension(testExtensionURL, "cat")

		found := FindExtension([]Extension{first, second}, testExtensionURL)

		if assert.NotNil(t, found) {
			assert.Equal(t, "dog", *found.ValueString)
		}
	})

	t.Run("Missing URL Returns Nil", func(t *testing.T) {
		ext, _ := EncodeExtension(testExtensionURL, "dog")

		assert.Nil(t, FindExtension([]Extension{ext}, "https://other/url"))
	})

	t.Run("Empty Slice Returns Nil", func(t *testing.T) {
		assert.Nil(t, FindExtension(nil, testExtensionURL))
	})
}
