package dashboard

import (
	"time"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"
	"pawcare-service/internal/pkg/utils"

	"github.com/google/uuid"
)

const measureReportTypeSummary = "summary"

// Human-readable labels keyed by the proprietary stat field names. Unknown
// keys fall back to the raw key.
var appointmentStatLabels = map[string]string{
	"todaysAppointments":    "Today's Appointments",
	"upcomingAppointments":  "Upcoming Appointments",
	"completedAppointments": "Completed Appointments",
	"newAppointments":       "New Appointments",
}

func statLabel(key string) string {
	if label, ok := appointmentStatLabels[key]; ok {
		return label
	}
	return key
}

// GraphDataToFHIR converts monthly appointment counts into a MeasureReport
// bundle anchored to the current year.
func GraphDataToFHIR(stats []requests.MonthlyAppointmentStat, extensionBaseURL string) fhir_dto.Bundle {
	return GraphDataToFHIRForYear(stats, time.Now().Year(), extensionBaseURL)
}

// GraphDataToFHIRForYear is the year-parameterized form; report periods run
// from the first through the last calendar day of each month, leap-year
// aware.
func GraphDataToFHIRForYear(stats []requests.MonthlyAppointmentStat, year int, extensionBaseURL string) fhir_dto.Bundle {
	entries := make([]fhir_dto.Entry, 0, len(stats))
	for _, stat := range stats {
		start, end := utils.MonthPeriod(year, time.Month(stat.Month))

		resource := fhir_dto.MeasureReport{
			ResourceType: constvars.ResourceMeasureReport,
			ID:           uuid.NewString(),
			Status:       constvars.FhirMeasureReportStatusFinal,
			Type:         measureReportTypeSummary,
			Period:       fhir_dto.Period{Start: start, End: end},
			Group: []fhir_dto.MeasureReportGroup{
				buildCountGroup(constvars.FhirGroupTotalAppointments, stat.TotalAppointments),
				buildCountGroup(constvars.FhirGroupSuccessfulAppointments, stat.Successful),
				buildCountGroup(constvars.FhirGroupCanceledAppointments, stat.Canceled),
			},
		}
		if ext, err := fhir_dto.EncodeExtension(extensionBaseURL+"/"+constvars.ExtensionPathMonthName, stat.MonthName); err == nil {
			resource.Extension = append(resource.Extension, ext)
		}

		entries = append(entries, fhir_dto.Entry{
			FullUrl:  utils.BuildURN(resource.ID),
			Resource: resource,
		})
	}

	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeCollection,
		Entry:        entries,
	}
}

func buildCountGroup(label string, count int) fhir_dto.MeasureReportGroup {
	return fhir_dto.MeasureReportGroup{
		Code:       fhir_dto.CodeableConcept{Text: label},
		Population: []fhir_dto.MeasureReportPopulation{{Count: count}},
	}
}

// SpecialityStatsToFHIR converts department-wise appointment counts into
// Observation resources.
func SpecialityStatsToFHIR(stats []requests.SpecialityStat, extensionBaseURL string) fhir_dto.Bundle {
	entries := make([]fhir_dto.Entry, 0, len(stats))
	for _, stat := range stats {
		resource := fhir_dto.Observation{
			ResourceType: constvars.ResourceObservation,
			ID:           uuid.NewString(),
			Status:       constvars.FhirObservationStatusFinal,
			Code: fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{{
					System:  constvars.FhirCodingSystemDepartment,
					Code:    stat.ID,
					Display: stat.DepartmentName,
				}},
			},
			ValueQuantity: &fhir_dto.Quantity{Value: float64(stat.Count)},
		}
		if stat.DepartmentName != "" {
			if ext, err := fhir_dto.EncodeExtension(extensionBaseURL+"/"+constvars.ExtensionPathDepartmentName, stat.DepartmentName); err == nil {
				resource.Extension = append(resource.Extension, ext)
			}
		}

		entries = append(entries, fhir_dto.Entry{
			FullUrl:  utils.BuildURN(resource.ID),
			Resource: resource,
		})
	}

	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeCollection,
		Entry:        entries,
	}
}

// AppointmentStatsToFHIR converts the fixed four-key stats record into four
// Observation resources keyed by human-readable label.
func AppointmentStatsToFHIR(stats requests.AppointmentStats) fhir_dto.Bundle {
	counts := []struct {
		key   string
		count int
	}{
		{"todaysAppointments", stats.TodaysAppointments},
		{"upcomingAppointments", stats.UpcomingAppointments},
		{"completedAppointments", stats.CompletedAppointments},
		{"newAppointments", stats.NewAppointments},
	}

	entries := make([]fhir_dto.Entry, 0, len(counts))
	for _, item := range counts {
		resource := fhir_dto.Observation{
			ResourceType:  constvars.ResourceObservation,
			ID:            uuid.NewString(),
			Status:        constvars.FhirObservationStatusFinal,
			Code:          fhir_dto.CodeableConcept{Text: statLabel(item.key)},
			ValueQuantity: &fhir_dto.Quantity{Value: float64(item.count)},
		}
		entries = append(entries, fhir_dto.Entry{
			FullUrl:  utils.BuildURN(resource.ID),
			Resource: resource,
		})
	}

	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeCollection,
		Entry:        entries,
	}
}
