package common

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		expectError      bool
		expectedError    string
	}{
		{
			name:             "valid format - json",
			format:           "json",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      false,
		},
		{
			name:             "valid format - text",
			format:           "text",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      false,
		},
		{
			name:             "valid format - markdown",
			format:           "markdown",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      false,
		},
		{
			name:             "invalid format - xml",
			format:           "xml",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      true,
			expectedError:    `unsupported output format "xml", expected one of: json, text, markdown`,
		},
		{
			name:             "case sensitive - JSON uppercase",
			format:           "JSON",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      true,
			expectedError:    `unsupported output format "JSON", expected one of: json, text, markdown`,
		},
		{
			name:             "empty format string",
			format:           "",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      true,
			expectedError:    `unsupported output format "", expected one of: json, text, markdown`,
		},
		{
			name:             "empty supported formats - should allow all",
			format:           "xml",
			supportedFormats: []string{},
			expectError:      false,
		},
		{
			name:             "single supported format - invalid",
			format:           "text",
			supportedFormats: []string{"json"},
			expectError:      true,
			expectedError:    `unsupported output format "text", expected one of: json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
					return
				}
				if tt.expectedError != "" && err.Error() != tt.expectedError {
					t.Errorf("Expected error '%s', got '%s'", tt.expectedError, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error but got: %v", err)
				}
			}
		})
	}
}

func TestParseResumeData(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectError bool
		wantName    string
	}{
		{
			name:        "minimal resume",
			content:     `{"personalInfo":{"fullName":"Ada Lovelace","email":"","phone":"","location":"","summary":""}}`,
			expectError: false,
			wantName:    "Ada Lovelace",
		},
		{
			name:        "empty object",
			content:     `{}`,
			expectError: false,
		},
		{
			name:        "invalid json",
			content:     `{personalInfo`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseResumeData(tt.content)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}
			if data.PersonalInfo.FullName != tt.wantName {
				t.Errorf("FullName = %q, want %q", data.PersonalInfo.FullName, tt.wantName)
			}
		})
	}
}

// Benchmark tests to ensure validation is fast
func BenchmarkValidateOutputFormat(b *testing.B) {
	supportedFormats := []string{"json", "text", "markdown"}

	b.Run("valid format", func(b *testing.B) {
		for b.Loop() {
			_ = ValidateOutputFormat("json", supportedFormats)
		}
	})

	b.Run("invalid format", func(b *testing.B) {
		for b.Loop() {
			_ = ValidateOutputFormat("xml", supportedFormats)
		}
	})
}
