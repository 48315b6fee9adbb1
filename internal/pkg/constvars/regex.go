package constvars

const (
	RegexNumeric         = `^\d+$`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexTime24HHMM      = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexTime12HourClock = `^(1[0-2]|[1-9]):[0-5]\d\s?(AM|PM)$`
	RegexFourDigitYear   = `^\d{4}$`
	RegexURL             = `^(http|https):\/\/[^\s$.?#].[^\s]*$`
)
