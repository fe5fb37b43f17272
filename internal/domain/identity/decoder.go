// Package identity decodes national identity numbers.
//
// The first six characters of an identity number hold the holder's birth date as
// yymmdd and the seventh holds the gender digit. No checksum is verified.
package identity

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"schoolhub/internal/domain/entity"
)

const (
	birthDateLen = 6
	genderIndex  = 6
	femaleDigit  = '0'

	// NoCenturyCutoff keeps every 2-digit year in the current century.
	NoCenturyCutoff = -1
)

// Decoder turns identity numbers into a birth date and gender.
type Decoder struct {
	now           func() time.Time
	centuryCutoff int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithClock sets the clock used to infer the century of the birth year.
func WithClock(now func() time.Time) Option {
	return func(d *Decoder) {
		d.now = now
	}
}

// WithCenturyCutoff places 2-digit years greater than cutoff in the previous century.
// A negative cutoff disables the rule.
func WithCenturyCutoff(cutoff int) Option {
	return func(d *Decoder) {
		d.centuryCutoff = cutoff
	}
}

// NewDecoder creates a Decoder. Without options every birth year lands in the
// current century, so a holder born in 1985 decodes as 2085.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		now:           time.Now,
		centuryCutoff: NoCenturyCutoff,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Decode never fails. Unreadable birth-date digits produce entity.InvalidDateOfBirth,
// and any gender digit other than '0' (including a missing one) decodes as male.
func (d *Decoder) Decode(idNumber string) entity.IdentityInfo {
	runes := []rune(idNumber)

	return entity.IdentityInfo{
		DateOfBirth: d.dateOfBirth(substr(runes, 0, birthDateLen)),
		Gender:      gender(runes),
	}
}

func (d *Decoder) dateOfBirth(yymmdd []rune) string {
	year, yearOK := parseLeadingInt(substr(yymmdd, 0, 2))
	month, monthOK := parseLeadingInt(substr(yymmdd, 2, 2))
	day, dayOK := parseLeadingInt(substr(yymmdd, 4, 2))
	if !yearOK || !monthOK || !dayOK {
		return entity.InvalidDateOfBirth
	}

	now := d.now()
	currentYear := now.Year()
	century := currentYear - currentYear%100
	if d.centuryCutoff >= 0 && year > d.centuryCutoff {
		century -= 100
	}

	// time.Date normalises out-of-range months and days into the neighbouring
	// month or year (month 00 is December of the previous year, day 00 is the
	// last day of the previous month).
	birth := time.Date(century+year, time.Month(month), day, 0, 0, 0, 0, now.Location())

	return strconv.Itoa(birth.Year()) + "-" + pad2(int(birth.Month())) + "-" + pad2(birth.Day())
}

func gender(runes []rune) string {
	if len(runes) > genderIndex && runes[genderIndex] == femaleDigit {
		return entity.GenderFemale
	}

	return entity.GenderMale
}

// substr returns up to n runes starting at start, clamped to the input.
func substr(runes []rune, start, n int) []rune {
	if start >= len(runes) {
		return nil
	}
	end := min(start+n, len(runes))

	return runes[start:end]
}

// parseLeadingInt reads an optionally signed decimal prefix after leading
// whitespace, ignoring whatever follows the digits. It fails when no digit is found.
func parseLeadingInt(runes []rune) (int, bool) {
	s := strings.TrimLeftFunc(string(runes), unicode.IsSpace)

	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	value, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		value = value*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	return sign * value, true
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}

	return strconv.Itoa(n)
}
