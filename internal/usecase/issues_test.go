package usecase_test

import (
	"testing"

	"event-insights-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeIssues(t *testing.T) {
	tests := []struct {
		name      string
		issue     map[string]any
		message   string
		extraInfo *string
	}{
		{
			name:    "known type without image",
			issue:   map[string]any{"type": "proguard_missing_mapping", "data": map[string]any{"mapping_uuid": "abc"}},
			message: "A proguard mapping file was missing.",
		},
		{
			name:      "image path only",
			issue:     map[string]any{"type": "native_missing_dsym", "data": map[string]any{"image_path": "C:/Apps/Foo.dll"}},
			message:   "A required debug information file was missing.",
			extraInfo: ptr("Foo.dll"),
		},
		{
			name:      "image path without slash",
			issue:     map[string]any{"type": "native_bad_dsym", "data": map[string]any{"image_path": "Foo", "image_arch": "x86_64"}},
			message:   "The debug information file used was broken.",
			extraInfo: ptr("Foo (x86_64)"),
		},
		{
			name:      "trailing slash keeps empty basename",
			issue:     map[string]any{"type": "native_bad_dsym", "data": map[string]any{"image_path": "/tmp/"}},
			message:   "The debug information file used was broken.",
			extraInfo: ptr(""),
		},
		{
			name:    "arch without path is ignored",
			issue:   map[string]any{"type": "native_bad_dsym", "data": map[string]any{"image_arch": "arm64"}},
			message: "The debug information file used was broken.",
		},
		{
			name:    "unknown type",
			issue:   map[string]any{"type": "something_new", "data": map[string]any{}},
			message: "Unknown error",
		},
		{
			name:    "template placeholders",
			issue:   map[string]any{"type": "js_invalid_source_encoding", "data": map[string]any{"value": "utf-8"}},
			message: "Source file was not 'utf-8' encoding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := usecase.SummarizeIssues([]map[string]any{tt.issue})
			require.Len(t, result, 1)
			assert.Equal(t, tt.message, result[0].Message)
			assert.Equal(t, tt.extraInfo, result[0].ExtraInfo)
		})
	}
}

func TestSummarizeIssues_Empty(t *testing.T) {
	result := usecase.SummarizeIssues(nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func ptr(s string) *string { return &s }
