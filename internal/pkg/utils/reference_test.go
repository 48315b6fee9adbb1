package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReference(t *testing.T) {
	t.Run("Joins Type And ID", func(t *testing.T) {
		assert.Equal(t, "Patient/abc123", BuildReference("Patient", "abc123"))
	})

	t.Run("Unknown Resource Type Is Accepted", func(t *testing.T) {
		assert.Equal(t, "CarePlan/cp-9", BuildReference("CarePlan", "cp-9"))
	})
}

func TestParseReference(t *testing.T) {
	t.Run("Valid Reference", func(t *testing.T) {
		resourceType, id, ok := ParseReference("Patient/abc123")

		assert.True(t, ok)
		assert.Equal(t, "Patient", resourceType)
		assert.Equal(t, "abc123", id)
	})

	t.Run("Missing Slash", func(t *testing.T) {
		_, _, ok := ParseReference("malformed")
		assert.False(t, ok)
	})

	t.Run("Empty ID", func(t *testing.T) {
		_, _, ok := ParseReference("Patient/")
		assert.False(t, ok)
	})

	t.Run("Empty Resource Type", func(t *testing.T) {
		_, _, ok := ParseReference("/abc123")
		assert.False(t, ok)
	})

	t.Run("Too Many Segments", func(t *testing.T) {
		_, _, ok := ParseReference("Patient/abc/extra")
		assert.False(t, ok)
	})

	t.Run("Round Trips With BuildReference", func(t *testing.T) {
		resourceType, id, ok := ParseReference(BuildReference("Practitioner", "doc-77"))

		assert.True(t, ok)
		assert.Equal(t, "Practitioner", resourceType)
		assert.Equal(t, "doc-77", id)
	})
}

func TestBuildURN(t *testing.T) {
	assert.Equal(t, "urn:uuid:1234", BuildURN("1234"))
}
