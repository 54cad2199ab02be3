package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
		{"Mixed case not accepted", "Pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}
