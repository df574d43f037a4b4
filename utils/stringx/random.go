// File: random.go
// Title: Random String Convenience Functions
// Description: Convenience generators for common token shapes built on the
//              secure generator. Uses crypto/rand for every draw.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with secure random generation
// - 2025-03-02 v0.2.0: Draw through Generator, RandomPassword uses class minimums

package stringx

const (
	// Character sets for random string generation
	LettersLowercase = lowerChars
	LettersUppercase = upperChars
	Letters          = LettersLowercase + LettersUppercase
	Digits           = digitChars
	Alphanumeric     = Letters + Digits

	// Safe characters for URLs and filenames
	URLSafe = Alphanumeric + "-_"

	// Human-readable characters (excluding visually similar characters like 0, O, l, 1)
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// Special characters for password generation
	SpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// RandomString generates a cryptographically secure random string of the specified length
// using the provided character set. If charset is empty, it defaults to Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	return defaultGenerator.RandomString(length, charset)
}

// RandomString is the package function on a specific generator. Repeated
// runes in charset count once.
func (g *Generator) RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if charset == "" {
		charset = Alphanumeric
	}

	runes := uniqueRunes(charset, nil)
	result := make([]rune, length)
	for i := range result {
		r, err := g.pick("RandomString", runes)
		if err != nil {
			return "", err
		}
		result[i] = r
	}
	return string(result), nil
}

// RandomAlphanumeric generates a random alphanumeric string of the specified length.
func RandomAlphanumeric(length int) (string, error) {
	return RandomString(length, Alphanumeric)
}

// RandomHex generates a random hexadecimal string of the specified length.
// The resulting string will contain only characters 0-9 and a-f.
func RandomHex(length int) (string, error) {
	return RandomString(length, "0123456789abcdef")
}

// RandomURLSafe generates a random URL-safe string of the specified length.
func RandomURLSafe(length int) (string, error) {
	return RandomString(length, URLSafe)
}

// RandomHumanReadable generates a random human-readable string of the specified length.
// Excludes visually similar characters to reduce transcription errors.
func RandomHumanReadable(length int) (string, error) {
	return RandomString(length, HumanReadable)
}

// RandomPassword generates a secure random password with the specified length.
// From length 4 on it contains at least one lowercase letter, uppercase
// letter, digit and character from SpecialChars.
func RandomPassword(length int) (string, error) {
	var minimums map[CharClass]int
	if length >= 4 {
		minimums = map[CharClass]int{
			ClassLowercase: 1,
			ClassUppercase: 1,
			ClassDigits:    1,
			ClassSpecial:   1,
		}
	}
	return GenerateSecureRandomString(length, ClassAll, SpecialChars, minimums)
}
