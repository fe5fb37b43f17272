package entity

// Gender labels derived from the gender digit of an identity number.
const (
	GenderFemale = "Female"
	GenderMale   = "Male"
)

// InvalidDateOfBirth is the date produced when the birth-date digits of an
// identity number cannot be read as numbers.
const InvalidDateOfBirth = "NaN-NaN-NaN"

// IdentityInfo is what an identity number tells about its holder.
type IdentityInfo struct {
	DateOfBirth string
	Gender      string
}
