package usecase

import (
	"fmt"
	"strings"

	"event-insights-service/internal/domain"
)

const unknownEventError = "unknown_error"

// Тексты ошибок обработки событий. Плейсхолдеры {name} берутся из data проблемы.
var eventErrorMessages = map[string]string{
	"invalid_data":                           "Discarded invalid value",
	"invalid_attribute":                      "Discarded unknown attribute",
	"missing_attribute":                      "Missing value for required attribute",
	"value_too_long":                         "Discarded value due to exceeding maximum length",
	"future_timestamp":                       "Invalid timestamp (in future)",
	"past_timestamp":                         "Invalid timestamp (too old)",
	"clock_drift":                            "Clock drift detected in SDK",
	"invalid_environment":                    "Environment cannot contain \"/\" or newlines",
	"native_no_crashed_thread":               "No crashed thread found in crash report",
	"native_internal_failure":                "Internal failure when attempting to symbolicate",
	"native_bad_dsym":                        "The debug information file used was broken.",
	"native_missing_optionally_bundled_dsym": "An optional debug information file was missing.",
	"native_missing_dsym":                    "A required debug information file was missing.",
	"native_missing_system_dsym":             "A system debug information file was missing.",
	"native_missing_symbol":                  "Could not resolve one or more frames in debug information file.",
	"native_simulator_frame":                 "Encountered an unprocessable simulator frame.",
	"native_unknown_image":                   "A binary image is referenced that is unknown.",
	"native_symbolicator_failed":             "Failed to process native stacktrace.",
	"proguard_missing_mapping":               "A proguard mapping file was missing.",
	"proguard_missing_lineno":                "A proguard mapping file does not contain line info.",
	"js_generic_fetch_error":                 "Unable to fetch resource",
	"js_invalid_http_code":                   "HTTP returned error response",
	"js_invalid_content":                     "Source file was not JavaScript",
	"js_no_column":                           "Cannot expand sourcemap due to missing column information",
	"js_missing_source":                      "Source code was not found",
	"js_invalid_source_encoding":             "Source file was not '{value}' encoding",
	"js_invalid_sourcemap_location":          "Invalid location in sourcemap",
	"js_too_large":                           "Remote file too large for processing",
	"js_fetch_timeout":                       "Remote file took too long to load",
	unknownEventError:                        "Unknown error",
}

// SummarizeIssues превращает проблемы обработки из активности в строки уведомления.
func SummarizeIssues(issues []map[string]any) []domain.IssueSummary {
	result := make([]domain.IssueSummary, 0, len(issues))
	for _, issue := range issues {
		issueType, _ := issue["type"].(string)
		data, _ := issue["data"].(map[string]any)

		var extraInfo *string
		if imagePath, ok := data["image_path"]; ok {
			info := basename(fmt.Sprint(imagePath))
			if arch, ok := data["image_arch"]; ok {
				info = fmt.Sprintf("%s (%v)", info, arch)
			}
			extraInfo = &info
		}

		result = append(result, domain.IssueSummary{
			Message:   eventErrorMessage(issueType, data),
			ExtraInfo: extraInfo,
		})
	}
	return result
}

func eventErrorMessage(issueType string, data map[string]any) string {
	tmpl, ok := eventErrorMessages[issueType]
	if !ok {
		tmpl = eventErrorMessages[unknownEventError]
	}
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	for k, v := range data {
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", fmt.Sprint(v))
	}
	return tmpl
}

// basename отрезает всё до последнего "/", не нормализуя путь.
func basename(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
