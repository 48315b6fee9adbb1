package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"len":      "must be %s characters long",
	"numeric":  "must be a number",
	"url":      "must be a valid URL",
	"oneof":    "must be one of [%s]",
	"time_24h": "must be a 24-hour clock time (HH:MM)",
	"date_iso": "must be a date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
)

// Error messages for developers
const (
	ErrDevInvalidInput                       = "invalid input"
	ErrDevCannotParseJSON                    = "cannot parse JSON"
	ErrDevCannotMarshalJSON                  = "cannot marshal JSON"
	ErrDevValidationFailed                   = "request validation failed"
	ErrDevServerDeadlineExceeded             = "server deadline exceeded"
	ErrDevMissingRequestID                   = "request id not found in context"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevQueuePublishFailed                 = "failed to publish message to queue '%s'"
	ErrDevQueuePublishNotConfirmed           = "publish to queue '%s' was not confirmed by broker"
)
