package entity

// SizeClass represents the headcount bracket of an agency.
type SizeClass string

const (
	SizeClassSolo       SizeClass = "1-10"
	SizeClassSmall      SizeClass = "11-50"
	SizeClassMedium     SizeClass = "51-200"
	SizeClassLarge      SizeClass = "201-500"
	SizeClassEnterprise SizeClass = "500+"
)

// ValidSizeClass reports whether the given value is a recognized size class.
func ValidSizeClass(value string) bool {
	switch SizeClass(value) {
	case SizeClassSolo, SizeClassSmall, SizeClassMedium, SizeClassLarge, SizeClassEnterprise:
		return true
	default:
		return false
	}
}
