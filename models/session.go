package models

// SessionFormat is how a session is held.
type SessionFormat string

const (
	FormatOnline   SessionFormat = "Online"
	FormatInPerson SessionFormat = "In-Person"
)

// SessionAvailability restricts who can join a session.
type SessionAvailability string

const (
	AvailabilityMale   SessionAvailability = "Male"
	AvailabilityFemale SessionAvailability = "Female"
	AvailabilityMixed  SessionAvailability = "Mixed"
)

// SessionLanguage is the language a session is conducted in.
type SessionLanguage string

const (
	LanguageEnglish   SessionLanguage = "English"
	LanguageArabic    SessionLanguage = "Arabic"
	LanguageBilingual SessionLanguage = "Bilingual"
)

// SupportSession is one scheduled occurrence of a support group.
// EnrolledByUser is local-only state; it is never read back from the directory.
type SupportSession struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	ProviderID      string              `json:"providerId"`
	ProviderName    string              `json:"providerName"`
	Date            string              `json:"date"` // e.g. "Wed, Mar 12"
	Time            string              `json:"time"` // e.g. "6:00 PM"
	DurationMinutes int                 `json:"durationMinutes"`
	Format          SessionFormat       `json:"format"`
	Description     string              `json:"description"`
	Availability    SessionAvailability `json:"availability"`
	Language        SessionLanguage     `json:"language"`
	EnrolledCount   int                 `json:"enrolledCount"`
	MaxParticipants int                 `json:"maxParticipants"`
	EnrolledByUser  bool                `json:"enrolledByUser,omitempty"`
}

// IsFull reports whether the session has no capacity left.
func (s SupportSession) IsFull() bool {
	return s.EnrolledCount >= s.MaxParticipants
}
