package ai

// FallbackCategory is the reserved label assigned when classification is
// skipped or fails. It is not part of the candidate set.
const FallbackCategory = "general"

// Categories defines the closed set of candidate labels for article
// classification. Every stored article carries exactly one of these or the
// fallback.
var Categories = []string{
	"politics",
	"sports",
	"tech",
	"business",
	"entertainment",
	"health",
	"science",
	"world news",
	"environment",
	"military",
	"crime",
	"economy",
}

// IsCategory reports whether label is a member of the candidate set or the
// fallback.
func IsCategory(label string) bool {
	if label == FallbackCategory {
		return true
	}
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
