package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format    string
		expectErr bool
	}{
		{"pretty", false},
		{"csv", false},
		{"json", true},
		{"", true},
		{"PRETTY", true},
		{"Csv", true},
		{" pretty ", true},
		{"pretty-format", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectErr %v", tt.format, err, tt.expectErr)
			}
		})
	}
}

func TestValidateOutputFormatErrorMessage(t *testing.T) {
	err := ValidateOutputFormat("xml")
	if err == nil {
		t.Fatal("expected error for xml")
	}
	for _, part := range []string{"pretty", "csv", "xml"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q should mention %q", err, part)
		}
	}
}
