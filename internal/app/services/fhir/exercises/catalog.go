package exercises

import (
	"strings"

	"pawcare-service/internal/pkg/dto/requests"
)

// Catalog is a memory-backed exercise source standing in for the upstream
// content feed. Records flow through the same normalization path as
// ORM-backed rows.
type Catalog struct {
	exercises []requests.Exercise
	planTypes []requests.ExercisePlanType
	types     []requests.ExerciseType
}

func NewCatalog() *Catalog {
	return &Catalog{
		exercises: []requests.Exercise{
			{ID: "ex-001", Title: "Leash Walk Warmup", ExerciseTypeCode: "walk", ExerciseTypeDisplay: "Walking", VideoURL: "https://cdn.pawcare.io/videos/leash-walk.mp4", ThumbnailURL: "https://cdn.pawcare.io/thumbs/leash-walk.jpg", PlanTypeID: "plan-basic", PlanTypeName: "Basic Mobility"},
			{ID: "ex-002", Title: "Hind Leg Stretch", ExerciseTypeCode: "stretch", ExerciseTypeDisplay: "Stretching", VideoURL: "https://cdn.pawcare.io/videos/hind-leg-stretch.mp4", ThumbnailURL: "https://cdn.pawcare.io/thumbs/hind-leg-stretch.jpg", PlanTypeID: "plan-rehab", PlanTypeName: "Post-surgery Rehab"},
			{ID: "ex-003", Title: "Balance Board", ExerciseTypeCode: "balance", ExerciseTypeDisplay: "Balance", VideoURL: "https://cdn.pawcare.io/videos/balance-board.mp4", ThumbnailURL: "https://cdn.pawcare.io/thumbs/balance-board.jpg", PlanTypeID: "plan-rehab", PlanTypeName: "Post-surgery Rehab"},
			{ID: "ex-004", Title: "Fetch Sprints", ExerciseTypeCode: "cardio", ExerciseTypeDisplay: "Cardio", VideoURL: "https://cdn.pawcare.io/videos/fetch-sprints.mp4", ThumbnailURL: "https://cdn.pawcare.io/thumbs/fetch-sprints.jpg", PlanTypeID: "plan-fitness", PlanTypeName: "Fitness"},
			{ID: "ex-005", Title: "Stair Climbs", ExerciseTypeCode: "cardio", ExerciseTypeDisplay: "Cardio", VideoURL: "https://cdn.pawcare.io/videos/stair-climbs.mp4", ThumbnailURL: "https://cdn.pawcare.io/thumbs/stair-climbs.jpg", PlanTypeID: "plan-fitness", PlanTypeName: "Fitness"},
			{ID: "ex-006", Title: "Cavaletti Poles", ExerciseTypeCode: "balance", ExerciseTypeDisplay: "Balance", VideoURL: "https://cdn.pawcare.io/videos/cavaletti.mp4", ThumbnailURL: "https://cdn.pawcare.io/thumbs/cavaletti.jpg", PlanTypeID: "plan-rehab", PlanTypeName: "Post-surgery Rehab"},
		},
		planTypes: []requests.ExercisePlanType{
			{ID: "plan-basic", Name: "Basic Mobility"},
			{ID: "plan-rehab", Name: "Post-surgery Rehab"},
			{ID: "plan-fitness", Name: "Fitness"},
		},
		types: []requests.ExerciseType{
			{ID: "type-walk", Code: "walk", Display: "Walking"},
			{ID: "type-stretch", Code: "stretch", Display: "Stretching"},
			{ID: "type-balance", Code: "balance", Display: "Balance"},
			{ID: "type-cardio", Code: "cardio", Display: "Cardio"},
		},
	}
}

// FindExercises filters by exercise type code and title keyword, then
// returns the requested page and the filtered total.
func (c *Catalog) FindExercises(pagination *requests.Pagination) ([]interface{}, int) {
	var filtered []requests.Exercise
	for _, exercise := range c.exercises {
		if pagination.Type != "" && exercise.ExerciseTypeCode != pagination.Type {
			continue
		}
		if pagination.Keyword != "" && !strings.Contains(strings.ToLower(exercise.Title), strings.ToLower(pagination.Keyword)) {
			continue
		}
		filtered = append(filtered, exercise)
	}

	total := len(filtered)
	start := (pagination.Page - 1) * pagination.Limit
	if start > total {
		start = total
	}
	end := start + pagination.Limit
	if end > total {
		end = total
	}

	page := make([]interface{}, 0, end-start)
	for _, exercise := range filtered[start:end] {
		page = append(page, exercise)
	}
	return page, total
}

func (c *Catalog) PlanTypes() []interface{} {
	records := make([]interface{}, 0, len(c.planTypes))
	for _, planType := range c.planTypes {
		records = append(records, planType)
	}
	return records
}

func (c *Catalog) Types() []interface{} {
	records := make([]interface{}, 0, len(c.types))
	for _, exerciseType := range c.types {
		records = append(records, exerciseType)
	}
	return records
}
