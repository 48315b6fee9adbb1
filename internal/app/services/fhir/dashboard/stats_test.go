package dashboard

import (
	"testing"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
)

const testExtensionBase = "https://fhir.pawcare.io/StructureDefinition"

func TestGraphDataToFHIRForYear(t *testing.T) {
	stats := []requests.MonthlyAppointmentStat{
		{Month: 1, MonthName: "January", TotalAppointments: 40, Successful: 30, Canceled: 10},
		{Month: 2, MonthName: "February", TotalAppointments: 20, Successful: 18, Canceled: 2},
	}

	t.Run("Bundle Shape", func(t *testing.T) {
		bundle := GraphDataToFHIRForYear(stats, 2024, testExtensionBase)

		assert.Equal(t, constvars.ResourceBundle, bundle.ResourceType)
		assert.Equal(t, constvars.FhirBundleTypeCollection, bundle.Type)
		assert.Len(t, bundle.Entry, 2)
	})

	t.Run("Leap February Period", func(t *testing.T) {
		bundle := GraphDataToFHIRForYear(stats, 2024, testExtensionBase)

		report := bundle.Entry[1].Resource.(fhir_dto.MeasureReport)
		assert.Equal(t, "2024-02-01", report.Period.Start)
		assert.Equal(t, "2024-02-29", report.Period.End)
	})

	t.Run("Groups Carry Counts By Label", func(t *testing.T) {
		bundle := GraphDataToFHIRForYear(stats, 2024, testExtensionBase)

		report := bundle.Entry[0].Resource.(fhir_dto.MeasureReport)
		assert.Equal(t, constvars.FhirMeasureReportStatusFinal, report.Status)
		if assert.Len(t, report.Group, 3) {
			assert.Equal(t, constvars.FhirGroupTotalAppointments, report.Group[0].Code.Text)
			assert.Equal(t, 40, report.Group[0].Population[0].Count)
			assert.Equal(t, constvars.FhirGroupSuccessfulAppointments, report.Group[1].Code.Text)
			assert.Equal(t, 30, report.Group[1].Population[0].Count)
			assert.Equal(t, constvars.FhirGroupCanceledAppointments, report.Group[2].Code.Text)
			assert.Equal(t, 10, report.Group[2].Population[0].Count)
		}
	})

	t.Run("Month Name Rides As Extension", func(t *testing.T) {
		bundle := GraphDataToFHIRForYear(stats, 2024, testExtensionBase)

		report := bundle.Entry[0].Resource.(fhir_dto.MeasureReport)
		ext := fhir_dto.FindExtension(report.Extension, testExtensionBase+"/"+constvars.ExtensionPathMonthName)
		if assert.NotNil(t, ext) && assert.NotNil(t, ext.ValueString) {
			assert.Equal(t, "January", *ext.ValueString)
		}
	})
}

func TestGraphDataFromFHIR(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		stats := []requests.MonthlyAppointmentStat{
			{Month: 3, MonthName: "March", TotalAppointments: 12, Successful: 10, Canceled: 2},
		}
		bundle := GraphDataToFHIRForYear(stats, 2025, testExtensionBase)
		report := bundle.Entry[0].Resource.(fhir_dto.MeasureReport)

		points := GraphDataFromFHIR([]fhir_dto.MeasureReport{report})

		if assert.Len(t, points, 1) {
			assert.Equal(t, "March", points[0].MonthName)
			assert.Equal(t, 10, points[0].Completed)
			assert.Equal(t, 2, points[0].Cancelled)
		}
	})

	t.Run("Non MeasureReport Is Skipped", func(t *testing.T) {
		points := GraphDataFromFHIR([]fhir_dto.MeasureReport{{ResourceType: constvars.ResourceObservation}})

		assert.Empty(t, points)
	})

	t.Run("Missing Groups Default To Zero", func(t *testing.T) {
		points := GraphDataFromFHIR([]fhir_dto.MeasureReport{{ResourceType: constvars.ResourceMeasureReport}})

		if assert.Len(t, points, 1) {
			assert.Equal(t, "", points[0].MonthName)
			assert.Equal(t, 0, points[0].Completed)
			assert.Equal(t, 0, points[0].Cancelled)
		}
	})
}

func TestSpecialityStats(t *testing.T) {
	t.Run("Encode Carries Department Coding", func(t *testing.T) {
		bundle := SpecialityStatsToFHIR([]requests.SpecialityStat{
			{ID: "ortho", Count: 14, DepartmentName: "Orthopedics"},
		}, testExtensionBase)

		if assert.Len(t, bundle.Entry, 1) {
			observation := bundle.Entry[0].Resource.(fhir_dto.Observation)
			assert.Equal(t, constvars.FhirObservationStatusFinal, observation.Status)
			if assert.Len(t, observation.Code.Coding, 1) {
				assert.Equal(t, constvars.FhirCodingSystemDepartment, observation.Code.Coding[0].System)
				assert.Equal(t, "ortho", observation.Code.Coding[0].Code)
			}
			if assert.NotNil(t, observation.ValueQuantity) {
				assert.Equal(t, float64(14), observation.ValueQuantity.Value)
			}
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		bundle := SpecialityStatsToFHIR([]requests.SpecialityStat{
			{ID: "ortho", Count: 14, DepartmentName: "Orthopedics"},
		}, testExtensionBase)
		observation := bundle.Entry[0].Resource.(fhir_dto.Observation)

		stats := SpecialityStatsFromFHIR([]fhir_dto.Observation{observation})

		if assert.Len(t, stats, 1) {
			assert.Equal(t, "Orthopedics", stats[0].DepartmentName)
			assert.Equal(t, 14, stats[0].Count)
		}
	})

	t.Run("Missing Department Decodes As Unknown", func(t *testing.T) {
		stats := SpecialityStatsFromFHIR([]fhir_dto.Observation{{
			ResourceType: constvars.ResourceObservation,
		}})

		if assert.Len(t, stats, 1) {
			assert.Equal(t, "Unknown", stats[0].DepartmentName)
			assert.Equal(t, 0, stats[0].Count)
		}
	})
}

func TestAppointmentStats(t *testing.T) {
	record := requests.AppointmentStats{
		TodaysAppointments:    3,
		UpcomingAppointments:  7,
		CompletedAppointments: 120,
		NewAppointments:       5,
	}

	t.Run("Encode Produces Four Labeled Observations", func(t *testing.T) {
		bundle := AppointmentStatsToFHIR(record)

		if assert.Len(t, bundle.Entry, 4) {
			first := bundle.Entry[0].Resource.(fhir_dto.Observation)
			assert.Equal(t, "Today's Appointments", first.Code.Text)
			assert.Equal(t, float64(3), first.ValueQuantity.Value)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		bundle := AppointmentStatsToFHIR(record)

		observations := make([]fhir_dto.Observation, 0, len(bundle.Entry))
		for _, entry := range bundle.Entry {
			observations = append(observations, entry.Resource.(fhir_dto.Observation))
		}

		decoded := AppointmentStatsFromFHIR(observations)
		assert.Equal(t, 3, decoded.TodaysAppointments)
		assert.Equal(t, 7, decoded.UpcomingAppointments)
		assert.Equal(t, 120, decoded.CompletedAppointments)
		assert.Equal(t, 5, decoded.NewAppointments)
	})

	t.Run("Unrecognized Labels Are Ignored", func(t *testing.T) {
		stats := AppointmentStatsFromFHIR([]fhir_dto.Observation{{
			ResourceType:  constvars.ResourceObservation,
			Code:          fhir_dto.CodeableConcept{Text: "Mystery Metric"},
			ValueQuantity: &fhir_dto.Quantity{Value: 99},
		}})

		assert.Equal(t, 0, stats.TodaysAppointments)
		assert.Equal(t, 0, stats.NewAppointments)
	})
}
