package i18n

// Catalog maps translation keys to their per-language strings.
// The catalog is static, read-only data; it is never mutated at runtime.
type Catalog map[string]map[Language]string

// DefaultCatalog returns the built-in SkillLink translation catalogue.
func DefaultCatalog() Catalog {
	return Catalog{
		"welcome": {
			LangEnglish: "Welcome to Inclusive Worker",
			LangHindi:   "इनक्लूसिव वर्कर में आपका स्वागत है",
			LangTamil:   "இன்க்லுசிவ் வொர்க்கர்-க்கு வரவேற்கிறோம்",
			LangTelugu:  "ఇన్క్లూసివ్ వర్కర్ కు స్వాగతం",
			LangBengali: "ইনক্লুসিভ ওয়ার্কারে স্বাগতম",
		},
		"login": {
			LangEnglish: "Login",
			LangHindi:   "लॉगिन",
			LangTamil:   "உள்நுழைக",
			LangTelugu:  "లాగిన్",
			LangBengali: "লগইন",
		},
		"register": {
			LangEnglish: "Register",
			LangHindi:   "रजिस्टर",
			LangTamil:   "பதிவு",
			LangTelugu:  "నమోదు",
			LangBengali: "নিবন্ধন",
		},
		"email": {
			LangEnglish: "Email",
			LangHindi:   "ईमेल",
			LangTamil:   "மின்னஞ்சல்",
			LangTelugu:  "ఇమెయిల్",
			LangBengali: "ইমেইল",
		},
		"password": {
			LangEnglish: "Password",
			LangHindi:   "पासवर्ड",
			LangTamil:   "கடவுச்சொல்",
			LangTelugu:  "పాస్వర్డ్",
			LangBengali: "পাসওয়ার্ড",
		},
		"phone": {
			LangEnglish: "Phone Number",
			LangHindi:   "फोन नंबर",
			LangTamil:   "தொலைபேசி எண்",
			LangTelugu:  "ఫోన్ నంబర్",
			LangBengali: "ফোন নম্বর",
		},
		"search_jobs": {
			LangEnglish: "Search Jobs",
			LangHindi:   "नौकरी खोजें",
			LangTamil:   "வேலைகளைத் தேடுங்கள்",
			LangTelugu:  "ఉద్యోగాలను శోధించండి",
			LangBengali: "চাকরি খুঁজুন",
		},
		"apply": {
			LangEnglish: "Apply",
			LangHindi:   "आवेदन करें",
			LangTamil:   "விண்ணப்பிக்கவும்",
			LangTelugu:  "దరఖాస్తు చేసుకోండి",
			LangBengali: "আবেদন করুন",
		},
		"save": {
			LangEnglish: "Save",
			LangHindi:   "सहेजें",
			LangTamil:   "சேமி",
			LangTelugu:  "సేవ్",
			LangBengali: "সংরক্ষণ করুন",
		},
	}
}
