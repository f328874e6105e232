package assets

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ValidateAssetName accepts names made only of ASCII letters, digits,
// '-' and '_'. Separators, dots and anything else return ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		if r == '-' || r == '_' {
			continue
		}
		if r >= utf8.RuneSelf || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
