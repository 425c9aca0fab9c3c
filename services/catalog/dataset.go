package catalog

import "ibelong/models"

// Built-in fallback dataset. The store initializes with it so the visible
// list is never empty, even when the directory was never reachable.

var fallbackSessions = []models.SupportSession{
	{
		ID:              "1",
		Name:            "When anxiety feels heavy",
		ProviderID:      "p1",
		ProviderName:    "Dr. Sarah M.",
		Date:            "Tue, Mar 11",
		Time:            "6:00 PM",
		DurationMinutes: 60,
		Format:          models.FormatOnline,
		Description:     "A gentle space to share and listen when anxiety is weighing on you. No advice—just presence and connection with others who get it.",
		Availability:    models.AvailabilityMixed,
		Language:        models.LanguageEnglish,
		EnrolledCount:   4,
		MaxParticipants: 10,
	},
	{
		ID:              "2",
		Name:            "الهدوء معاً",
		ProviderID:      "p2",
		ProviderName:    "أكرم الراشد",
		Date:            "Wed, Mar 12",
		Time:            "4:30 PM",
		DurationMinutes: 45,
		Format:          models.FormatOnline,
		Description:     "Short practices and shared reflection for moments when you need to slow down. Co-hosted with a volunteer peer.",
		Availability:    models.AvailabilityMixed,
		Language:        models.LanguageArabic,
		EnrolledCount:   8,
		MaxParticipants: 12,
	},
	{
		ID:              "3",
		Name:            "Gentle space for low days",
		ProviderID:      "p3",
		ProviderName:    "Dr. James L.",
		Date:            "Thu, Mar 13",
		Time:            "7:00 PM",
		DurationMinutes: 60,
		Format:          models.FormatInPerson,
		Description:     "In-person circle for days when energy is low. We focus on being with what is, without fixing.",
		Availability:    models.AvailabilityMixed,
		Language:        models.LanguageEnglish,
		EnrolledCount:   6,
		MaxParticipants: 8,
	},
	{
		ID:              "4",
		Name:            "الأمل والتواصل",
		ProviderID:      "p4",
		ProviderName:    "سامية الخالد",
		Date:            "Sat, Mar 15",
		Time:            "10:00 AM",
		DurationMinutes: 90,
		Format:          models.FormatOnline,
		Description:     "A weekly space to connect with others, share what’s real, and remember you’re not alone. Volunteer-facilitated.",
		Availability:    models.AvailabilityFemale,
		Language:        models.LanguageArabic,
		EnrolledCount:   12,
		MaxParticipants: 12,
	},
	{
		ID:              "5",
		Name:            "دائرة الرجال",
		ProviderID:      "p3",
		ProviderName:    "Dr. James L.",
		Date:            "Sun, Mar 16",
		Time:            "5:00 PM",
		DurationMinutes: 60,
		Format:          models.FormatOnline,
		Description:     "A dedicated space for men to talk openly about stress, loss, and emotional weight. Professional facilitator.",
		Availability:    models.AvailabilityMale,
		Language:        models.LanguageBilingual,
		EnrolledCount:   3,
		MaxParticipants: 10,
	},
}

var fallbackProviders = []models.Provider{
	{
		ID:               "p1",
		Name:             "Dr. Sarah M.",
		Age:              38,
		Gender:           "Female",
		Degree:           "PhD Clinical Psychology",
		DegreeAr:         "دكتوراه في علم النفس السريري",
		Specialization:   "Anxiety, trauma-informed care",
		SpecializationAr: "القلق، الرعاية المستندة إلى الصدمة",
		VolunteerCoHost:  false,
		Bio:              "Sarah has over 10 years of experience in group therapy and community mental health. She believes in the power of shared space and listening.",
		BioAr:            "سارة لديها أكثر من 10 سنوات من الخبرة في العلاج الجماعي والصحة النفسية المجتمعية. تؤمن بقوة المساحة المشتركة والاستماع.",
		SessionIDs:       []string{"1"},
	},
	{
		ID:               "p2",
		Name:             "أكرم الراشد",
		Age:              29,
		Gender:           "Male",
		Degree:           "MA Counseling",
		DegreeAr:         "ماجستير في الاستشارات",
		Specialization:   "Mindfulness, peer support",
		SpecializationAr: "اليقظة الذهنية، الدعم من الأقران",
		VolunteerCoHost:  true,
		Bio:              "Alex facilitates groups as a volunteer alongside licensed providers. Lived experience with anxiety and recovery.",
		BioAr:            "أكرم ييسّر المجموعات متطوعاً إلى جانب مقدمي الخدمة المرخّصين. تجربة معيشية مع القلق والتعافي.",
		SessionIDs:       []string{"2"},
	},
	{
		ID:               "p3",
		Name:             "Dr. James L.",
		Age:              45,
		Gender:           "Male",
		Degree:           "MD Psychiatry, Psychotherapy certification",
		DegreeAr:         "دكتور في الطب النفسي، شهادة العلاج النفسي",
		Specialization:   "Mood, men’s mental health",
		SpecializationAr: "المزاج، الصحة النفسية للرجال",
		VolunteerCoHost:  false,
		Bio:              "James runs in-person and online groups focused on low mood and men’s mental health. Warm, steady presence.",
		BioAr:            "جيمس يدير مجموعات حضورية وعبر الإنترنت تركّز على المزاج المنخفض والصحة النفسية للرجال. حضور دافئ وثابت.",
		SessionIDs:       []string{"3", "5"},
	},
	{
		ID:               "p4",
		Name:             "سامية الخالد",
		Age:              34,
		Gender:           "Female",
		Degree:           "MSW",
		DegreeAr:         "ماجستير في العمل الاجتماعي",
		Specialization:   "Peer support, community",
		SpecializationAr: "الدعم من الأقران، المجتمع",
		VolunteerCoHost:  true,
		Bio:              "Sam is a volunteer facilitator who creates space for hope and connection. Passionate about reducing isolation.",
		BioAr:            "سامية ميسّرة متطوعة تخلق مساحة للأمل والتواصل. شغوفة بتقليل العزلة.",
		SessionIDs:       []string{"4"},
	},
}

// FallbackSessions returns a fresh copy of the built-in session dataset.
func FallbackSessions() []models.SupportSession {
	out := make([]models.SupportSession, len(fallbackSessions))
	copy(out, fallbackSessions)
	return out
}

// FallbackProviders returns a fresh copy of the built-in provider dataset.
func FallbackProviders() []models.Provider {
	out := make([]models.Provider, len(fallbackProviders))
	copy(out, fallbackProviders)
	return out
}
