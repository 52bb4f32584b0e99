package cli

import "testing"

func TestValidateName(t *testing.T) {
	valid := []string{"alpha", "beta two", "Gradient Descent", "notes-2024", "a"}
	for _, name := range valid {
		if err := validateName(name); err != nil {
			t.Errorf("validateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", ".", "..", ".hidden", "a/b", `a\b`, "/abs"}
	for _, name := range invalid {
		if err := validateName(name); err == nil {
			t.Errorf("validateName(%q) = nil, want error", name)
		}
	}
}
