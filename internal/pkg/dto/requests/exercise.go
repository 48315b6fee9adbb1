package requests

// Exercise is a single rehab/fitness exercise in a pet exercise plan.
type Exercise struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	ExerciseTypeCode    string `json:"exerciseTypeCode"`
	ExerciseTypeDisplay string `json:"exerciseTypeDisplay"`
	VideoURL            string `json:"videoUrl"`
	ThumbnailURL        string `json:"thumbnailUrl"`
	PlanTypeID          string `json:"planTypeId"`
	PlanTypeName        string `json:"planTypeName"`
}

// ExerciseNormalizer is implemented by ORM-backed records that must be
// flattened before field access. Encoders duck-type on this capability
// instead of requiring it.
type ExerciseNormalizer interface {
	Normalize() Exercise
}

type ExercisePlanType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ExercisePlanTypeNormalizer interface {
	Normalize() ExercisePlanType
}

type ExerciseType struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Display string `json:"display"`
}

type ExerciseTypeNormalizer interface {
	Normalize() ExerciseType
}
