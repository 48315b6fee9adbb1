package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceAppointments = "appointments"
	ResourceHospitals    = "hospitals"
	ResourceExercises    = "exercises"
	ResourceDashboard    = "dashboard"
	ResourceValidate     = "validate"
	ResourceSlots        = "slots"
)

const (
	QueryParamPage    = "page"
	QueryParamLimit   = "limit"
	QueryParamType    = "type"
	QueryParamKeyword = "keyword"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Presigned document URLs stay valid for this many days.
const SignedURLExpiryDays = 7
