// Package contact normalises applicant contact details so that the same
// person is recognised however they type their email or phone number.
package contact

import (
	"strings"
	"unicode"

	"github.com/emersion/go-message/mail"
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used to interpret phone numbers without a country code.
const DefaultRegion = "ZA"

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email is a single bare address.
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return strings.EqualFold(addr.Address, strings.TrimSpace(email))
}

// Normalizer turns phone numbers into a comparable form.
type Normalizer struct {
	region string
}

func NewNormalizer(region string) *Normalizer {
	if region == "" {
		region = DefaultRegion
	}
	return &Normalizer{region: strings.ToUpper(region)}
}

// Phone returns the digits of the E.164 form when phone parses as a valid
// number in the configured region, and the raw digits otherwise, so a
// leading "+" or punctuation never separates two entries of one number.
// Empty input stays empty.
func (n *Normalizer) Phone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	num, err := phonenumbers.Parse(phone, n.region)
	if err == nil && phonenumbers.IsValidNumber(num) {
		return DigitsOnly(phonenumbers.Format(num, phonenumbers.E164))
	}

	return DigitsOnly(phone)
}

// PhoneKeys returns the stored forms phone may have been saved under: the
// normalised form first, then the raw digits when they differ.
func (n *Normalizer) PhoneKeys(phone string) []string {
	norm := n.Phone(phone)
	if norm == "" {
		return nil
	}
	keys := []string{norm}
	if raw := DigitsOnly(phone); raw != "" && raw != norm {
		keys = append(keys, raw)
	}
	return keys
}

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
