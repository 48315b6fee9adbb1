package exercises

import (
	"testing"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
)

const testExtensionBase = "https://fhir.pawcare.io/StructureDefinition"

type ormExercise struct {
	row requests.Exercise
}

func (o ormExercise) Normalize() requests.Exercise {
	return o.row
}

func sampleExercise() requests.Exercise {
	return requests.Exercise{
		ID:                  "ex-001",
		Title:               "Leash Walk Warmup",
		ExerciseTypeCode:    "walk",
		ExerciseTypeDisplay: "Walking",
		VideoURL:            "https://cdn.example/videos/leash-walk.mp4",
		ThumbnailURL:        "https://cdn.example/thumbs/leash-walk.jpg",
		PlanTypeID:          "plan-basic",
		PlanTypeName:        "Basic Mobility",
	}
}

func TestExerciseToFHIR(t *testing.T) {
	t.Run("Full Record", func(t *testing.T) {
		resource := ExerciseToFHIR(sampleExercise(), testExtensionBase)

		assert.Equal(t, constvars.ResourceActivityDefinition, resource.ResourceType)
		assert.Equal(t, "ex-001", resource.ID)
		assert.Equal(t, constvars.FhirActivityKindTask, resource.Kind)
		assert.Equal(t, constvars.FhirActivityStatusActive, resource.Status)
		assert.Equal(t, "Leash Walk Warmup", resource.Title)

		if assert.Len(t, resource.Code.Coding, 1) {
			assert.Equal(t, constvars.FhirCodingSystemExerciseType, resource.Code.Coding[0].System)
			assert.Equal(t, "walk", resource.Code.Coding[0].Code)
		}
		if assert.Len(t, resource.RelatedArtifact, 2) {
			assert.Equal(t, "video", resource.RelatedArtifact[0].Display)
			assert.Equal(t, "thumbnail", resource.RelatedArtifact[1].Display)
		}
	})

	t.Run("Accepts Pointer Record", func(t *testing.T) {
		exercise := sampleExercise()

		resource := ExerciseToFHIR(&exercise, testExtensionBase)

		assert.Equal(t, "ex-001", resource.ID)
	})

	t.Run("Accepts Normalizer Record", func(t *testing.T) {
		resource := ExerciseToFHIR(ormExercise{row: sampleExercise()}, testExtensionBase)

		assert.Equal(t, "Leash Walk Warmup", resource.Title)
	})

	t.Run("Unknown Record Type Degrades To Zero", func(t *testing.T) {
		resource := ExerciseToFHIR(42, testExtensionBase)

		assert.NotEmpty(t, resource.ID)
		assert.Empty(t, resource.Title)
		assert.Empty(t, resource.RelatedArtifact)
	})

	t.Run("Plan Extensions Are Sparse", func(t *testing.T) {
		exercise := sampleExercise()
		exercise.PlanTypeName = ""

		resource := ExerciseToFHIR(exercise, testExtensionBase)

		assert.NotNil(t, fhir_dto.FindExtension(resource.Extension, testExtensionBase+"/"+constvars.ExtensionPathPlanType))
		assert.Nil(t, fhir_dto.FindExtension(resource.Extension, testExtensionBase+"/"+constvars.ExtensionPathPlanName))
	})
}

func TestExercisesToFHIR(t *testing.T) {
	records := []interface{}{sampleExercise()}
	pagination := &requests.Pagination{Page: 2, Limit: 1}

	t.Run("Searchset With Links And Total", func(t *testing.T) {
		bundle := ExercisesToFHIR(records, pagination, 3, "http://localhost/v1/fhir/exercises", testExtensionBase)

		assert.Equal(t, constvars.FhirBundleTypeSearchset, bundle.Type)
		if assert.NotNil(t, bundle.Total) {
			assert.Equal(t, 3, *bundle.Total)
		}
		assert.Len(t, bundle.Entry, 1)
		// middle page: self, previous, next
		assert.Len(t, bundle.Link, 3)
	})

	t.Run("Entry FullUrl Is URN", func(t *testing.T) {
		bundle := ExercisesToFHIR(records, pagination, 3, "http://localhost/v1/fhir/exercises", testExtensionBase)

		assert.Equal(t, "urn:uuid:ex-001", bundle.Entry[0].FullUrl)
	})
}

func TestExercisePlanTypesToFHIR(t *testing.T) {
	bundle := ExercisePlanTypesToFHIR([]interface{}{
		requests.ExercisePlanType{ID: "plan-basic", Name: "Basic Mobility"},
	}, testExtensionBase)

	assert.Equal(t, constvars.FhirBundleTypeSearchset, bundle.Type)
	assert.Empty(t, bundle.Link)
	if assert.Len(t, bundle.Entry, 1) {
		resource := bundle.Entry[0].Resource.(fhir_dto.ActivityDefinition)
		assert.Equal(t, "Basic Mobility", resource.Title)
	}
}

func TestExerciseTypesToFHIR(t *testing.T) {
	bundle := ExerciseTypesToFHIR([]interface{}{
		requests.ExerciseType{ID: "type-walk", Code: "walk", Display: "Walking"},
	})

	assert.Equal(t, constvars.FhirBundleTypeSearchset, bundle.Type)
	if assert.Len(t, bundle.Entry, 1) {
		resource := bundle.Entry[0].Resource.(fhir_dto.ActivityDefinition)
		assert.Equal(t, "Walking", resource.Title)
		if assert.Len(t, resource.Code.Coding, 1) {
			assert.Equal(t, "walk", resource.Code.Coding[0].Code)
		}
	}
}

func TestCatalogFindExercises(t *testing.T) {
	catalog := NewCatalog()

	t.Run("Type Filter", func(t *testing.T) {
		records, total := catalog.FindExercises(&requests.Pagination{Page: 1, Limit: 10, Type: "cardio"})

		assert.Equal(t, 2, total)
		assert.Len(t, records, 2)
	})

	t.Run("Keyword Filter Is Case Insensitive", func(t *testing.T) {
		records, total := catalog.FindExercises(&requests.Pagination{Page: 1, Limit: 10, Keyword: "STAIR"})

		assert.Equal(t, 1, total)
		assert.Len(t, records, 1)
	})

	t.Run("Pagination Slices The Filtered Set", func(t *testing.T) {
		first, total := catalog.FindExercises(&requests.Pagination{Page: 1, Limit: 2})
		second, _ := catalog.FindExercises(&requests.Pagination{Page: 2, Limit: 2})

		assert.Equal(t, 6, total)
		assert.Len(t, first, 2)
		assert.Len(t, second, 2)
		assert.NotEqual(t, first[0], second[0])
	})

	t.Run("Page Beyond Range Is Empty", func(t *testing.T) {
		records, total := catalog.FindExercises(&requests.Pagination{Page: 9, Limit: 10})

		assert.Equal(t, 6, total)
		assert.Empty(t, records)
	})
}
