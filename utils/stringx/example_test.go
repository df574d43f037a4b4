// File: example_test.go
// Title: Example Tests for stringx Package
// Description: Runnable examples for secure generation and policies.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial examples

package stringx_test

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/msto63/toolbox/utils/stringx"
)

func ExampleGenerateSecureRandomString() {
	s, err := stringx.GenerateSecureRandomString(12,
		stringx.ClassLowercase|stringx.ClassDigits, "",
		map[stringx.CharClass]int{stringx.ClassDigits: 4})
	if err != nil {
		fmt.Println(err)
		return
	}

	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	fmt.Println(utf8.RuneCountInString(s), digits >= 4)
	// Output: 12 true
}

func ExampleGenerateSecureRandomString_invalid() {
	_, err := stringx.GenerateSecureRandomString(5, stringx.ClassLowercase, "",
		map[stringx.CharClass]int{stringx.ClassLowercase: 10})
	fmt.Println(errors.Is(err, stringx.ErrInvalidParameter))
	// Output: true
}

func ExampleSecurePassword() {
	password, err := stringx.SecurePassword(20)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(password))
	// Output: 20
}

func ExampleParseCharClass() {
	classes, err := stringx.ParseCharClass("Upper | digits")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(classes)
	fmt.Println(classes.Has(stringx.ClassDigits), classes.Has(stringx.ClassLowercase))
	// Output:
	// upper,digits
	// true false
}

func ExamplePolicy_Validate() {
	p := stringx.PasswordPolicy(3)
	fmt.Println(errors.Is(p.Validate(), stringx.ErrInvalidParameter))

	p.Length = 16
	fmt.Println(p.Validate())
	// Output:
	// true
	// <nil>
}

func ExampleRandomString() {
	s, _ := stringx.RandomString(8, "ab")
	fmt.Println(len(s), strings.Trim(s, "ab") == "")
	// Output: 8 true
}
