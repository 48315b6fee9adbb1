package dashboard

import (
	"strings"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/responses"
	"pawcare-service/internal/pkg/fhir_dto"
)

// GraphDataFromFHIR recovers monthly graph points from MeasureReport
// resources. Missing counts default to 0, a missing month name to "".
func GraphDataFromFHIR(reports []fhir_dto.MeasureReport) []responses.MonthlyGraphPoint {
	points := make([]responses.MonthlyGraphPoint, 0, len(reports))
	for _, report := range reports {
		if report.ResourceType != constvars.ResourceMeasureReport {
			continue
		}
		points = append(points, responses.MonthlyGraphPoint{
			MonthName: extensionStringBySuffix(report.Extension, constvars.ExtensionPathMonthName),
			Completed: groupCount(report.Group, constvars.FhirGroupSuccessfulAppointments),
			Cancelled: groupCount(report.Group, constvars.FhirGroupCanceledAppointments),
		})
	}
	return points
}

func groupCount(groups []fhir_dto.MeasureReportGroup, label string) int {
	for _, group := range groups {
		if group.Code.Text != label {
			continue
		}
		if len(group.Population) == 0 {
			return 0
		}
		return group.Population[0].Count
	}
	return 0
}

// SpecialityStatsFromFHIR is the inverse of SpecialityStatsToFHIR. Missing
// department names decode as "Unknown", missing counts as 0.
func SpecialityStatsFromFHIR(observations []fhir_dto.Observation) []responses.SpecialityStat {
	stats := make([]responses.SpecialityStat, 0, len(observations))
	for _, observation := range observations {
		if observation.ResourceType != constvars.ResourceObservation {
			continue
		}

		departmentName := extensionStringBySuffix(observation.Extension, constvars.ExtensionPathDepartmentName)
		if departmentName == "" {
			departmentName = "Unknown"
		}

		count := 0
		if observation.ValueQuantity != nil {
			count = int(observation.ValueQuantity.Value)
		}

		stats = append(stats, responses.SpecialityStat{
			DepartmentName: departmentName,
			Count:          count,
		})
	}
	return stats
}

// AppointmentStatsFromFHIR is the inverse of AppointmentStatsToFHIR.
// Observations with unrecognized labels are ignored; missing counts stay 0.
func AppointmentStatsFromFHIR(observations []fhir_dto.Observation) responses.AppointmentStats {
	stats := responses.AppointmentStats{}
	for _, observation := range observations {
		if observation.ResourceType != constvars.ResourceObservation {
			continue
		}

		count := 0
		if observation.ValueQuantity != nil {
			count = int(observation.ValueQuantity.Value)
		}

		switch observation.Code.Text {
		case statLabel("todaysAppointments"):
			stats.TodaysAppointments = count
		case statLabel("upcomingAppointments"):
			stats.UpcomingAppointments = count
		case statLabel("completedAppointments"):
			stats.CompletedAppointments = count
		case statLabel("newAppointments"):
			stats.NewAppointments = count
		}
	}
	return stats
}

func extensionStringBySuffix(extensions []fhir_dto.Extension, pathSuffix string) string {
	for _, ext := range extensions {
		if !strings.Contains(ext.Url, pathSuffix) {
			continue
		}
		if value, err := fhir_dto.DecodeExtensionValue(ext); err == nil {
			if text, ok := value.(string); ok {
				return text
			}
		}
	}
	return ""
}
