// Package barcode generates EAN-13 product barcodes for catalog items
// created without one.
package barcode

import "fmt"

// Fixed EAN-13 prefix assigned to the business: GS1 country prefix 620
// followed by the registered company code.
const (
	CountryPrefix = "620"
	CompanyCode   = "1234"
)

// CheckDigit computes the EAN-13 check digit for a 12-digit partial code
// using the standard alternating 1/3 weights: positions 0,2,4,... weigh 1
// and positions 1,3,5,... weigh 3, check = (10 - sum mod 10) mod 10.
func CheckDigit(partial string) (int, error) {
	if len(partial) != 12 {
		return 0, fmt.Errorf("ean13: partial code must be 12 digits, got %d", len(partial))
	}
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(partial[i] - '0')
		if d < 0 || d > 9 {
			return 0, fmt.Errorf("ean13: non-digit %q at position %d", partial[i], i)
		}
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return (10 - sum%10) % 10, nil
}

// Generate builds the full 13-digit barcode for a sequential product number.
// The product number is zero-padded to 5 digits, so the scheme supports
// numbers 0 through 99999. Deterministic: the same number always yields the
// same barcode.
func Generate(productNumber int) (string, error) {
	if productNumber < 0 || productNumber > 99999 {
		return "", fmt.Errorf("ean13: product number %d out of range 0-99999", productNumber)
	}
	partial := fmt.Sprintf("%s%s%05d", CountryPrefix, CompanyCode, productNumber)
	check, err := CheckDigit(partial)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", partial, check), nil
}

// Valid reports whether code is a well-formed EAN-13 with a correct check digit.
func Valid(code string) bool {
	if len(code) != 13 {
		return false
	}
	check, err := CheckDigit(code[:12])
	if err != nil {
		return false
	}
	return int(code[12]-'0') == check
}
