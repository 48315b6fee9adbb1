package exercises

import (
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"
	"pawcare-service/internal/pkg/utils"

	"github.com/google/uuid"
)

const (
	artifactTypeDocumentation = "documentation"
	artifactDisplayVideo      = "video"
	artifactDisplayThumbnail  = "thumbnail"
)

// normalizeExercise accepts a plain record or an ORM-style wrapper exposing
// Normalize, flattening the wrapper before field access.
func normalizeExercise(record interface{}) requests.Exercise {
	switch v := record.(type) {
	case requests.Exercise:
		return v
	case *requests.Exercise:
		if v != nil {
			return *v
		}
	case requests.ExerciseNormalizer:
		return v.Normalize()
	}
	return requests.Exercise{}
}

// ExerciseToFHIR converts one exercise record into an ActivityDefinition.
func ExerciseToFHIR(record interface{}, extensionBaseURL string) fhir_dto.ActivityDefinition {
	exercise := normalizeExercise(record)

	id := exercise.ID
	if id == "" {
		id = uuid.NewString()
	}

	resource := fhir_dto.ActivityDefinition{
		ResourceType: constvars.ResourceActivityDefinition,
		ID:           id,
		Status:       constvars.FhirActivityStatusActive,
		Kind:         constvars.FhirActivityKindTask,
		Title:        exercise.Title,
	}

	if exercise.ExerciseTypeCode != "" {
		resource.Code = fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  constvars.FhirCodingSystemExerciseType,
				Code:    exercise.ExerciseTypeCode,
				Display: exercise.ExerciseTypeDisplay,
			}},
		}
	}
	if exercise.VideoURL != "" {
		resource.RelatedArtifact = append(resource.RelatedArtifact, fhir_dto.RelatedArtifact{
			Type:    artifactTypeDocumentation,
			Display: artifactDisplayVideo,
			Url:     exercise.VideoURL,
		})
	}
	if exercise.ThumbnailURL != "" {
		resource.RelatedArtifact = append(resource.RelatedArtifact, fhir_dto.RelatedArtifact{
			Type:    artifactTypeDocumentation,
			Display: artifactDisplayThumbnail,
			Url:     exercise.ThumbnailURL,
		})
	}

	resource.Extension = buildPlanExtensions(exercise, extensionBaseURL)
	return resource
}

func buildPlanExtensions(exercise requests.Exercise, baseURL string) []fhir_dto.Extension {
	var extensions []fhir_dto.Extension
	if exercise.PlanTypeID != "" {
		if ext, err := fhir_dto.EncodeExtension(baseURL+"/"+constvars.ExtensionPathPlanType, exercise.PlanTypeID); err == nil {
			extensions = append(extensions, ext)
		}
	}
	if exercise.PlanTypeName != "" {
		if ext, err := fhir_dto.EncodeExtension(baseURL+"/"+constvars.ExtensionPathPlanName, exercise.PlanTypeName); err == nil {
			extensions = append(extensions, ext)
		}
	}
	return extensions
}

// ExercisesToFHIR wraps exercise records into a paged searchset bundle.
// This is the only exercise encoder that computes pagination links.
func ExercisesToFHIR(records []interface{}, pagination *requests.Pagination, total int, baseURL, extensionBaseURL string) fhir_dto.Bundle {
	entries := make([]fhir_dto.Entry, 0, len(records))
	for _, record := range records {
		resource := ExerciseToFHIR(record, extensionBaseURL)
		entries = append(entries, fhir_dto.Entry{
			FullUrl:  utils.BuildURN(resource.ID),
			Resource: resource,
		})
	}

	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeSearchset,
		Total:        &total,
		Entry:        entries,
		Link:         utils.BuildBundleLinks(baseURL, pagination.Page, pagination.Limit, total, pagination.Type, pagination.Keyword),
	}
}

// ExercisePlanTypesToFHIR wraps plan-type records into a searchset bundle
// without pagination links.
func ExercisePlanTypesToFHIR(records []interface{}, extensionBaseURL string) fhir_dto.Bundle {
	entries := make([]fhir_dto.Entry, 0, len(records))
	for _, record := range records {
		planType := normalizePlanType(record)
		id := planType.ID
		if id == "" {
			id = uuid.NewString()
		}

		resource := fhir_dto.ActivityDefinition{
			ResourceType: constvars.ResourceActivityDefinition,
			ID:           id,
			Status:       constvars.FhirActivityStatusActive,
			Kind:         constvars.FhirActivityKindTask,
			Title:        planType.Name,
		}
		if ext, err := fhir_dto.EncodeExtension(extensionBaseURL+"/"+constvars.ExtensionPathPlanType, id); err == nil {
			resource.Extension = append(resource.Extension, ext)
		}

		entries = append(entries, fhir_dto.Entry{
			FullUrl:  utils.BuildURN(id),
			Resource: resource,
		})
	}

	total := len(entries)
	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeSearchset,
		Total:        &total,
		Entry:        entries,
	}
}

func normalizePlanType(record interface{}) requests.ExercisePlanType {
	switch v := record.(type) {
	case requests.ExercisePlanType:
		return v
	case *requests.ExercisePlanType:
		if v != nil {
			return *v
		}
	case requests.ExercisePlanTypeNormalizer:
		return v.Normalize()
	}
	return requests.ExercisePlanType{}
}

// ExerciseTypesToFHIR wraps exercise-type records into a searchset bundle
// without pagination links.
func ExerciseTypesToFHIR(records []interface{}) fhir_dto.Bundle {
	entries := make([]fhir_dto.Entry, 0, len(records))
	for _, record := range records {
		exerciseType := normalizeExerciseType(record)
		id := exerciseType.ID
		if id == "" {
			id = uuid.NewString()
		}

		resource := fhir_dto.ActivityDefinition{
			ResourceType: constvars.ResourceActivityDefinition,
			ID:           id,
			Status:       constvars.FhirActivityStatusActive,
			Kind:         constvars.FhirActivityKindTask,
			Title:        exerciseType.Display,
			Code: fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{{
					System:  constvars.FhirCodingSystemExerciseType,
					Code:    exerciseType.Code,
					Display: exerciseType.Display,
				}},
			},
		}

		entries = append(entries, fhir_dto.Entry{
			FullUrl:  utils.BuildURN(id),
			Resource: resource,
		})
	}

	total := len(entries)
	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeSearchset,
		Total:        &total,
		Entry:        entries,
	}
}

func normalizeExerciseType(record interface{}) requests.ExerciseType {
	switch v := record.(type) {
	case requests.ExerciseType:
		return v
	case *requests.ExerciseType:
		if v != nil {
			return *v
		}
	case requests.ExerciseTypeNormalizer:
		return v.Normalize()
	}
	return requests.ExerciseType{}
}
