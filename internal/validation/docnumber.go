// Package validation provides format and checksum validation for Indian
// identity document numbers. These checks are self-contained: they validate
// the number itself, independent of any document content.
package validation

import (
	"regexp"
	"strings"
)

// Result is the outcome of a document number validation.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Status values for Result.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

var (
	panPattern      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	passportPattern = regexp.MustCompile(`^[A-Z][0-9]{7}$`)
	licensePattern  = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z]{1,2}[0-9]{7}$`)
	voterIDPattern  = regexp.MustCompile(`^[A-Z]{3}[0-9]{7}$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
)

// Validate checks a document number against the rules for its document type.
// The second return value is false when the type has no validator; callers
// should report that no validation was performed rather than an invalid
// number.
func Validate(docType, number string) (Result, bool) {
	switch strings.ToLower(strings.TrimSpace(docType)) {
	case "aadhaar":
		return ValidateAadhaar(number), true
	case "pan":
		return ValidatePAN(number), true
	case "passport":
		return ValidatePassport(number), true
	case "driving_license":
		return ValidateDrivingLicense(number), true
	case "voter_id":
		return ValidateVoterID(number), true
	}
	return Result{}, false
}

// ValidateAadhaar checks a 12-digit Aadhaar number including its Verhoeff
// checksum.
func ValidateAadhaar(number string) Result {
	if len(number) != 12 || !digitsPattern.MatchString(number) {
		return Result{Status: StatusInvalid, Message: "Must be 12 digits"}
	}
	if !verhoeffValid(number) {
		return Result{Status: StatusInvalid, Message: "Invalid Aadhaar number"}
	}
	return Result{Status: StatusValid, Message: "Valid Aadhaar"}
}

// ValidatePAN checks the PAN card format: five letters, four digits, one
// letter.
func ValidatePAN(number string) Result {
	if !panPattern.MatchString(strings.ToUpper(number)) {
		return Result{Status: StatusInvalid, Message: "Format: ABCDE1234F"}
	}
	return Result{Status: StatusValid, Message: "Valid PAN"}
}

// ValidatePassport checks the Indian passport format: one letter followed by
// seven digits.
func ValidatePassport(number string) Result {
	if len(number) != 8 {
		return Result{Status: StatusInvalid, Message: "Must be 8 characters"}
	}
	if !passportPattern.MatchString(strings.ToUpper(number)) {
		return Result{Status: StatusInvalid, Message: "Format: A1234567"}
	}
	return Result{Status: StatusValid, Message: "Valid Passport"}
}

// ValidateDrivingLicense checks the Indian driving license format: state
// code, two digits, issuing code, seven digits.
func ValidateDrivingLicense(number string) Result {
	if len(number) < 10 {
		return Result{Status: StatusInvalid, Message: "Too short (min 10 chars)"}
	}
	if !licensePattern.MatchString(strings.ToUpper(number)) {
		return Result{Status: StatusInvalid, Message: "Format: AB12C3456789"}
	}
	return Result{Status: StatusValid, Message: "Valid Driving License"}
}

// ValidateVoterID checks the EPIC format: three letters followed by seven
// digits.
func ValidateVoterID(number string) Result {
	if !voterIDPattern.MatchString(strings.ToUpper(number)) {
		return Result{Status: StatusInvalid, Message: "Format: ABC1234567"}
	}
	return Result{Status: StatusValid, Message: "Valid Voter ID"}
}

// Verhoeff checksum tables.
var verhoeffD = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

var verhoeffP = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

func verhoeffValid(number string) bool {
	c := 0
	n := len(number)
	for i := 0; i < n; i++ {
		digit := int(number[n-1-i] - '0')
		c = verhoeffD[c][verhoeffP[i%8][digit]]
	}
	return c == 0
}
