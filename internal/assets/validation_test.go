package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	valid := []string{"course", "my-style", "my_style", "style123", "MyStyle"}
	invalid := []string{
		"", ".", "..", ".hidden", "style.css",
		"path/to/style", "path\\to\\style", "../secret", "/etc/passwd", "C:\\Windows",
		"with space", "café", "style\x00",
	}

	for _, name := range valid {
		if err := ValidateAssetName(name); err != nil {
			t.Errorf("ValidateAssetName(%q) unexpected error: %v", name, err)
		}
	}
	for _, name := range invalid {
		err := ValidateAssetName(name)
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", name, err)
		}
	}
}

func TestValidateAssetName_MessageNamesInput(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("../evil")
	if err == nil || !strings.Contains(err.Error(), "../evil") {
		t.Errorf("error = %v, want it to quote the rejected name", err)
	}
}
