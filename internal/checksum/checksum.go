// Package checksum implements the check-digit schemes used by tracking-number
// formats. Every validator is a total function over arbitrary strings: input
// of the wrong length or shape returns false, never an error or a panic.
// None of these functions know anything about carriers or countries.
package checksum

// Luhn reports whether the trailing digit of s is a valid mod-10 (Luhn)
// check digit over the preceding digits. Used by several postal operators'
// all-numeric formats.
func Luhn(s string) bool {
	if len(s) < 2 {
		return false
	}
	sum := 0
	double := true
	for i := len(s) - 2; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	check := s[len(s)-1]
	if check < '0' || check > '9' {
		return false
	}
	return (sum+int(check-'0'))%10 == 0
}

// Mod11 reports whether the trailing digit of s is a valid weighted mod-11
// check digit, with weights descending from len(s) down to 2 over the body.
// This is the convention used by 10- and 11-digit air-waybill numbers.
// A computed remainder of 10 has no single-digit representation and is
// treated as invalid.
func Mod11(s string) bool {
	if len(s) < 2 {
		return false
	}
	sum := 0
	weight := len(s)
	for i := 0; i < len(s)-1; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		sum += int(c-'0') * weight
		weight--
	}
	check := s[len(s)-1]
	if check < '0' || check > '9' {
		return false
	}
	r := 11 - sum%11
	if r == 11 {
		r = 0
	}
	if r == 10 {
		return false
	}
	return r == int(check-'0')
}

// UPS reports whether s is an 18-character "1Z" tracking number with a valid
// check digit. Characters between the 1Z prefix and the final digit are
// valued as themselves for digits and (ASCII − 63) mod 10 for letters, with
// every second position doubled; the check digit is (10 − sum mod 10) mod 10.
func UPS(s string) bool {
	if len(s) != 18 || s[0] != '1' || s[1] != 'Z' {
		return false
	}
	sum := 0
	for i := 2; i < 17; i++ {
		c := s[i]
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'A' && c <= 'Z':
			v = int(c-63) % 10
		default:
			return false
		}
		if (i-2)%2 == 1 {
			v *= 2
		}
		sum += v
	}
	check := s[17]
	if check < '0' || check > '9' {
		return false
	}
	return (10-sum%10)%10 == int(check-'0')
}

// s10Weights are the UPU S10 serial-number weights.
var s10Weights = [8]int{8, 6, 4, 2, 3, 5, 9, 7}

// S10 reports whether s is a well-formed UPU S10 identifier
// (2 letters + 9 digits + 2 letters) with a valid embedded check digit.
// The check digit is 11 − (weighted sum mod 11), with 10 mapping to 0 and
// 11 mapping to 5.
func S10(s string) bool {
	if len(s) != 13 {
		return false
	}
	for _, i := range []int{0, 1, 11, 12} {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	sum := 0
	for i := 0; i < 8; i++ {
		c := s[i+2]
		if c < '0' || c > '9' {
			return false
		}
		sum += int(c-'0') * s10Weights[i]
	}
	check := s[10]
	if check < '0' || check > '9' {
		return false
	}
	r := 11 - sum%11
	switch r {
	case 10:
		r = 0
	case 11:
		r = 5
	}
	return r == int(check-'0')
}

// fedExExpressWeights cycle 1, 3, 7 from the rightmost body digit.
var fedExExpressWeights = [3]int{1, 3, 7}

// FedEx reports whether s carries a valid FedEx check digit. Twelve-digit
// Express numbers use the 1/3/7 repeating-weight mod-11-mod-10 scheme;
// fifteen-digit Ground numbers use alternating 3/1 weights mod 10. Other
// lengths are not checkable and return false.
func FedEx(s string) bool {
	switch len(s) {
	case 12:
		sum := 0
		for i := 0; i < 11; i++ {
			c := s[10-i]
			if c < '0' || c > '9' {
				return false
			}
			sum += int(c-'0') * fedExExpressWeights[i%3]
		}
		check := s[11]
		if check < '0' || check > '9' {
			return false
		}
		return sum%11%10 == int(check-'0')
	case 15:
		sum := 0
		for i := 0; i < 14; i++ {
			c := s[13-i]
			if c < '0' || c > '9' {
				return false
			}
			d := int(c - '0')
			if i%2 == 0 {
				d *= 3
			}
			sum += d
		}
		check := s[14]
		if check < '0' || check > '9' {
			return false
		}
		return (10-sum%10)%10 == int(check-'0')
	default:
		return false
	}
}
