package errors

import (
	"strings"
	"testing"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "classic", false},
		{"with dash", "fresh-clean", false},
		{"with digit", "layout2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"uppercase", "Classic", true},
		{"space", "not a profile", true},
		{"leading dash", "-bold", true},
		{"path", "../classic", true},
		{"control char", "bold\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(ErrCodeInvalidProfile, "layout profile", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidProfile) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidProfile)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "content/site.toml", false},
		{"absolute", "/etc/salonsite/content.toml", false},
		{"dot segment", "./content.toml", false},

		{"empty", "", true},
		{"parent", "../secrets.toml", true},
		{"nested parent", "content/../../x.toml", true},
		{"null byte", "content\x00.toml", true},
		{"too long", strings.Repeat("a", 1025), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
