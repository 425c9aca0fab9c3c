package models

import "time"

// Intensity grades how strongly a check-in was felt.
type Intensity string

const (
	IntensityMild     Intensity = "mild"
	IntensityModerate Intensity = "moderate"
	IntensityStrong   Intensity = "strong"
)

// PrimaryEmotions is the fixed tag set a check-in selects from.
var PrimaryEmotions = []string{"calm", "anxious", "sad", "angry", "numb", "overwhelmed"}

// NoticeEntry is one finalized emotional check-in. Entries are immutable
// after creation and presented sorted by CreatedAt descending.
type NoticeEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Emotions  []string  `json:"emotions"`
	Intensity Intensity `json:"intensity"`
	BodyNote  string    `json:"bodyNote,omitempty"`
}

// IsPrimaryEmotion reports whether the tag belongs to the fixed set.
func IsPrimaryEmotion(tag string) bool {
	for _, e := range PrimaryEmotions {
		if e == tag {
			return true
		}
	}
	return false
}
