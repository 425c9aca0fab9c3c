package models

// Provider is a facilitator (professional or volunteer) hosting one or more sessions.
// The *Ar fields carry the optional Arabic-localized variants.
type Provider struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	Degree           string   `json:"degree"`
	DegreeAr         string   `json:"degreeAr,omitempty"`
	Specialization   string   `json:"specialization"`
	SpecializationAr string   `json:"specializationAr,omitempty"`
	VolunteerCoHost  bool     `json:"volunteerCoHost"`
	Bio              string   `json:"bio"`
	BioAr            string   `json:"bioAr,omitempty"`
	SessionIDs       []string `json:"sessionIds"`
}
