package headerregistry

import (
	"strings"
)

// TransformFunc is a function that transforms header values before they are
// stored. Transforms are registered per header name via the builder or
// Config.Transforms and run inside Set.
type TransformFunc func(value string) string

// ToLower transforms a header value to lowercase
func ToLower(value string) string {
	return strings.ToLower(value)
}

// ToUpper transforms a header value to uppercase
func ToUpper(value string) string {
	return strings.ToUpper(value)
}

// AddPrefix adds a prefix to a header value
func AddPrefix(prefix string) TransformFunc {
	return func(value string) string {
		return prefix + value
	}
}

// RemovePrefix removes a prefix from a header value
func RemovePrefix(prefix string) TransformFunc {
	return func(value string) string {
		return strings.TrimPrefix(value, prefix)
	}
}

// AddSuffix adds a suffix to the value
func AddSuffix(suffix string) TransformFunc {
	return func(value string) string {
		return value + suffix
	}
}

// RemoveSuffix removes a suffix from the value
func RemoveSuffix(suffix string) TransformFunc {
	return func(value string) string {
		return strings.TrimSuffix(value, suffix)
	}
}

// DefaultIfEmpty returns a default value if the input is empty
func DefaultIfEmpty(defaultValue string) TransformFunc {
	return func(value string) string {
		if value == "" {
			return defaultValue
		}
		return value
	}
}

// Truncate truncates the value to a maximum length
func Truncate(maxLength int) TransformFunc {
	return func(value string) string {
		if len(value) <= maxLength {
			return value
		}
		return value[:maxLength]
	}
}

// MaskSensitive masks sensitive information, showing only first and last few characters
func MaskSensitive(showChars int) TransformFunc {
	return func(value string) string {
		if len(value) <= showChars*2 {
			return strings.Repeat("*", len(value))
		}
		return value[:showChars] + strings.Repeat("*", len(value)-showChars*2) + value[len(value)-showChars:]
	}
}

// ChainTransforms chains multiple transformation functions
func ChainTransforms(transforms ...TransformFunc) TransformFunc {
	return func(value string) string {
		result := value
		for _, transform := range transforms {
			if transform != nil {
				result = transform(result)
			}
		}
		return result
	}
}
