package errors

import (
	"testing"
)

func TestValidateKindName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"upper", "OR", false},
		{"lower", "or", false},
		{"with dash", "half-adder", false},
		{"with underscore", "XOR_2", false},
		{"with digit", "NAND2", false},

		{"empty", "", true},
		{"too long", "A" + string(make([]byte, 80)), true},
		{"leading digit", "2OR", true},
		{"space", "O R", true},
		{"null byte", "OR\x00", true},
		{"newline", "OR\n", true},
		{"slash", "OR/AND", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKindName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKindName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRequest) {
				t.Errorf("ValidateKindName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidRequest)
			}
		})
	}
}

func TestValidatePositions(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []int
		outputs []int
		wantErr bool
	}{
		{"two in one out", []int{0, 5}, []int{3}, false},
		{"one in one out", []int{4}, []int{0}, false},
		{"one in no out", []int{2}, nil, false},
		{"nothing", nil, nil, false},

		{"input equals output", []int{3}, []int{3}, true},
		{"second input equals output", []int{0, 2}, []int{2}, true},
		{"duplicate inputs", []int{1, 1}, []int{3}, true},
		{"duplicate outputs", []int{1}, []int{3, 3}, true},
		{"negative", []int{-1}, []int{3}, true},
		{"too large", []int{0}, []int{6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositions(tt.inputs, tt.outputs, 6)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositions(%v, %v) error = %v, wantErr %v", tt.inputs, tt.outputs, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRequest) {
				t.Errorf("ValidatePositions(%v, %v) code = %v, want %v", tt.inputs, tt.outputs, GetCode(err), ErrCodeInvalidRequest)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "layout.svg", false},
		{"nested", "out/layouts/or.png", false},
		{"absolute", "/tmp/or.dot", false},

		{"empty", "", true},
		{"directory", "out/", true},
		{"null byte", "a\x00b", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
