package responses

type MonthlyGraphPoint struct {
	MonthName string `json:"monthname"`
	Completed int    `json:"completed"`
	Cancelled int    `json:"cancelled"`
}

type SpecialityStat struct {
	DepartmentName string `json:"departmentName"`
	Count          int    `json:"count"`
}

type AppointmentStats struct {
	TodaysAppointments    int `json:"todaysAppointments"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
	NewAppointments       int `json:"newAppointments"`
}
