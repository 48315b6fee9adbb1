package requests

// MonthlyAppointmentStat is one month of aggregated appointment counts from
// the dashboard pipeline.
type MonthlyAppointmentStat struct {
	Month             int    `json:"month"`
	MonthName         string `json:"monthName"`
	TotalAppointments int    `json:"totalAppointments"`
	Successful        int    `json:"successful"`
	Canceled          int    `json:"canceled"`
}

type SpecialityStat struct {
	ID             string `json:"_id"`
	Count          int    `json:"count"`
	DepartmentName string `json:"departmentName"`
}

type AppointmentStats struct {
	TodaysAppointments    int `json:"todaysAppointments"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
	NewAppointments       int `json:"newAppointments"`
}
