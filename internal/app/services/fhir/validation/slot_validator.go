package validation

import (
	"fmt"
	"regexp"
	"strings"

	"pawcare-service/internal/pkg/constvars"
)

var slotTimePattern = regexp.MustCompile(constvars.RegexTime12HourClock)

// ValidateSlot structurally checks one untyped Slot resource, prefixing
// every problem with path. isBooked must be the string "true" or "false";
// a boolean is a contract violation even though it looks more natural.
func ValidateSlot(slot map[string]interface{}, path string) []string {
	var issues []string

	if resourceType, _ := slot["resourceType"].(string); resourceType != constvars.ResourceSlot {
		issues = append(issues, fmt.Sprintf("%s: resourceType must be %q", path, constvars.ResourceSlot))
	}

	if id, ok := slot["id"].(string); !ok || id == "" {
		issues = append(issues, fmt.Sprintf("%s: id must be a non-empty string", path))
	}

	schedule, ok := slot["schedule"].(map[string]interface{})
	if !ok {
		issues = append(issues, fmt.Sprintf("%s: schedule is required", path))
	} else if reference, ok := schedule["reference"].(string); !ok || !strings.HasPrefix(reference, constvars.ResourceSchedule+"/") {
		issues = append(issues, fmt.Sprintf("%s: schedule.reference must start with %q", path, constvars.ResourceSchedule+"/"))
	}

	if isBooked, ok := slot["isBooked"].(string); !ok {
		issues = append(issues, fmt.Sprintf("%s: isBooked must be the string \"true\" or \"false\"", path))
	} else {
		switch strings.ToLower(isBooked) {
		case "true", "false":
		default:
			issues = append(issues, fmt.Sprintf("%s: isBooked must be the string \"true\" or \"false\"", path))
		}
	}

	if slotTime, ok := slot["slotTime"].(string); !ok || !slotTimePattern.MatchString(slotTime) {
		issues = append(issues, fmt.Sprintf("%s: slotTime must be a 12-hour clock time like \"9:30 AM\"", path))
	}

	return issues
}

// ValidateSlotBundle checks an untyped collection bundle of Slot resources,
// delegating each entry's resource to ValidateSlot.
func ValidateSlotBundle(bundle map[string]interface{}) []string {
	var issues []string

	if resourceType, _ := bundle["resourceType"].(string); resourceType != constvars.ResourceBundle {
		issues = append(issues, fmt.Sprintf("bundle: resourceType must be %q", constvars.ResourceBundle))
	}
	if bundleType, _ := bundle["type"].(string); bundleType != constvars.FhirBundleTypeCollection {
		issues = append(issues, fmt.Sprintf("bundle: type must be %q", constvars.FhirBundleTypeCollection))
	}

	entries, ok := bundle["entry"].([]interface{})
	if !ok {
		issues = append(issues, "bundle: entry must be an array")
		return issues
	}

	for i, item := range entries {
		path := fmt.Sprintf("entry[%d].resource", i)
		entry, ok := item.(map[string]interface{})
		if !ok {
			issues = append(issues, fmt.Sprintf("entry[%d]: must be an object", i))
			continue
		}
		resource, ok := entry["resource"].(map[string]interface{})
		if !ok {
			issues = append(issues, fmt.Sprintf("%s: missing resource", path))
			continue
		}
		issues = append(issues, ValidateSlot(resource, path)...)
	}

	return issues
}
