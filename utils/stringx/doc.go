// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx generates cryptographically secure random
//              strings with character class composition constraints.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-03-02 v0.2.0: Class based secure generator
// - 2025-03-03 v0.3.0: Policies and policy registry

// Package stringx generates cryptographically secure random strings.
//
// # Character Classes
//
// A CharClass is a bit set of ClassLowercase (a-z), ClassUppercase (A-Z),
// ClassDigits (0-9) and ClassSpecial. The special class has no built-in
// characters: the caller passes them as allowedSpecial. That string is NFC
// normalized, letters and digits are removed and repeated characters count
// once.
//
// # Generation
//
//	s, err := stringx.GenerateSecureRandomString(16,
//		stringx.ClassLowercase|stringx.ClassDigits, "",
//		map[stringx.CharClass]int{stringx.ClassDigits: 4})
//
// The result has exactly the requested number of runes. Each minimum is
// drawn from its own class, the rest from the union of all enabled classes,
// and the whole buffer is then shuffled with Fisher-Yates. Every draw uses
// crypto/rand.Int, which rejection-samples and so has no modulo bias.
//
// Requests that cannot be satisfied fail with an error matching
// ErrInvalidParameter:
//   - the minimums add up to more than the length
//   - a positive minimum names a class without characters
//   - characters remain to be drawn but no enabled class has any
//
// A negative length is treated as zero and negative minimums as zero.
// Minimums for classes that are not enabled are ignored.
//
// SecurePassword and SecureURLToken enable every class with a fixed special
// set. RandomString and its variants draw from an explicit character set.
//
// # Policies
//
// A Policy bundles a request under a name and can be decoded from TOML or
// YAML. PolicyRegistry loads a file of [policies.<name>] tables through
// core/config, generates by name and reloads the file on change with Watch.
//
// # Thread Safety
//
// All functions are safe for concurrent use. A Generator is immutable after
// NewGenerator returns and PolicyRegistry guards its policies with a lock.
package stringx
