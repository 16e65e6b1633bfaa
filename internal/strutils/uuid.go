package strutils

import (
	"fmt"
	"strings"
	"unicode"
)

const VALID_HEX_DIGITS = "0123456789abcdefABCDEF"

const STRIPPED_UUID_LENGTH = 32

// Removes dashes and converts all characters to lowercase
func StripUUID(uuid string) (string, error) {
	var stripped strings.Builder
	builderCap := stripped.Cap()
	missingCap := STRIPPED_UUID_LENGTH - builderCap
	if missingCap > 0 {
		stripped.Grow(missingCap)
	}

	for _, char := range uuid {
		if char == '-' {
			continue
		} else if strings.ContainsRune(VALID_HEX_DIGITS, char) {
			_, err := stripped.WriteRune(unicode.ToLower(char))
			if err != nil {
				return "", fmt.Errorf("failed writing to stringbuilder: %w", err)
			}
		} else {
			return "", fmt.Errorf("invalid character in UUID. input: '%s'", uuid)
		}
	}
	if stripped.Len() != STRIPPED_UUID_LENGTH {
		return "", fmt.Errorf("normalized UUID has incorrect length. input: '%s'", uuid)
	}
	return stripped.String(), nil
}

// Converts the UUID to the canonical dashed lowercase form
func NormalizeUUID(uuid string) (string, error) {
	stripped, err := StripUUID(uuid)
	if err != nil {
		return "", err
	}

	return strings.Join(
		[]string{
			stripped[0:8],
			stripped[8:12],
			stripped[12:16],
			stripped[16:20],
			stripped[20:32],
		},
		"-",
	), nil
}

func UUIDIsNormalized(uuid string) bool {
	normalized, err := NormalizeUUID(uuid)
	return err == nil && normalized == uuid
}
