package domain

type Language struct {
	ID         string
	Name       string
	NativeName string
}

type ChantPreset struct {
	ID         string
	Name       string
	NativeName string
	Color      string
}

// Catalog is the static language and chant preset table. Order matters: the
// first entry of each list is the fallback.
type Catalog struct {
	Languages []Language
	Chants    map[string][]ChantPreset
}

func (c Catalog) Language(id string) (Language, bool) {
	for _, l := range c.Languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

func (c Catalog) Chant(languageID, chantID string) (ChantPreset, bool) {
	for _, p := range c.Chants[languageID] {
		if p.ID == chantID {
			return p, true
		}
	}
	return ChantPreset{}, false
}

// FirstChant is the preset a language switch lands on. Languages without
// presets land on the custom chant.
func (c Catalog) FirstChant(languageID string) ChantPreset {
	if presets := c.Chants[languageID]; len(presets) > 0 {
		return presets[0]
	}
	return ChantPreset{ID: CustomChantID, Name: "Custom", NativeName: "Custom", Color: "slate"}
}

// DefaultCatalog returns the built-in presets.
func DefaultCatalog() Catalog {
	return Catalog{
		Languages: []Language{
			{ID: "sa", Name: "Sanskrit", NativeName: "संस्कृतम्"},
			{ID: "hi", Name: "Hindi", NativeName: "हिन्दी"},
			{ID: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ"},
			{ID: "ta", Name: "Tamil", NativeName: "தமிழ்"},
			{ID: "te", Name: "Telugu", NativeName: "తెలుగు"},
			{ID: "bn", Name: "Bengali", NativeName: "বাংলা"},
			{ID: "gu", Name: "Gujarati", NativeName: "ગુજરાતી"},
			{ID: "mr", Name: "Marathi", NativeName: "मराठी"},
			{ID: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ"},
			{ID: "ml", Name: "Malayalam", NativeName: "മലയാളം"},
		},
		Chants: map[string][]ChantPreset{
			"sa": {
				{ID: "sa-1", Name: "Om Namah Shivaya", NativeName: "ॐ नमः शिवाय", Color: "orange"},
				{ID: "sa-r", Name: "Radha", NativeName: "राधा", Color: "pink"},
				{ID: "sa-k", Name: "Krishna", NativeName: "कृष्ण", Color: "blue"},
				{ID: "sa-rm", Name: "Ram", NativeName: "राम", Color: "amber"},
				{ID: "sa-2", Name: "Gayatri Mantra", NativeName: "गायत्री मन्त्र", Color: "yellow"},
			},
			"hi": {
				{ID: "hi-1", Name: "Jai Shri Ram", NativeName: "जय श्री राम", Color: "amber"},
				{ID: "hi-r", Name: "Radha", NativeName: "राधा", Color: "pink"},
				{ID: "hi-k", Name: "Krishna", NativeName: "कृष्ण", Color: "blue"},
				{ID: "hi-rm", Name: "Ram", NativeName: "राम", Color: "amber"},
				{ID: "hi-2", Name: "Jai Hanuman", NativeName: "जय हनुमान", Color: "orange"},
			},
			"pa": {
				{ID: "pa-1", Name: "Waheguru", NativeName: "ਵਾਹਿਗੁਰੂ", Color: "yellow"},
				{ID: "pa-r", Name: "Radha", NativeName: "ਰਾਧਾ", Color: "pink"},
				{ID: "pa-k", Name: "Krishna", NativeName: "ਕ੍ਰਿਸ਼ਨਾ", Color: "blue"},
				{ID: "pa-rm", Name: "Ram", NativeName: "ਰਾਮ", Color: "amber"},
				{ID: "pa-2", Name: "Ek Onkar", NativeName: "ਏਕ ਓਂਕਾਰ", Color: "orange"},
			},
			"ta": {
				{ID: "ta-1", Name: "Om Namah Shivaya", NativeName: "ஓம் நம சிவாய", Color: "orange"},
				{ID: "ta-r", Name: "Radha", NativeName: "ராதா", Color: "pink"},
				{ID: "ta-k", Name: "Krishna", NativeName: "கிருஷ்ணா", Color: "blue"},
				{ID: "ta-rm", Name: "Ram", NativeName: "ராம்", Color: "amber"},
				{ID: "ta-2", Name: "Om Saravana Bhava", NativeName: "ஓம் சரவண பவ", Color: "amber"},
			},
			"te": {
				{ID: "te-1", Name: "Govinda Govinda", NativeName: "గోవిందా గోవిందా", Color: "yellow"},
				{ID: "te-r", Name: "Radha", NativeName: "రాధ", Color: "pink"},
				{ID: "te-k", Name: "Krishna", NativeName: "కృష్ణ", Color: "blue"},
				{ID: "te-rm", Name: "Ram", NativeName: "రామ్", Color: "amber"},
				{ID: "te-2", Name: "Om Namo Venkatesaya", NativeName: "ఓం నమో వేంకటేశాయ", Color: "emerald"},
			},
			"bn": {
				{ID: "bn-1", Name: "Hare Krishna", NativeName: "হরে কৃষ্ণ", Color: "emerald"},
				{ID: "bn-r", Name: "Radha", NativeName: "রাধা", Color: "pink"},
				{ID: "bn-k", Name: "Krishna", NativeName: "কৃষ্ণ", Color: "blue"},
				{ID: "bn-rm", Name: "Ram", NativeName: "রাম", Color: "amber"},
				{ID: "bn-2", Name: "Joy Maa Durga", NativeName: "জয় মা দুর্গা", Color: "red"},
			},
			"gu": {
				{ID: "gu-1", Name: "Jai Shri Krishna", NativeName: "જય શ્રી કૃષ્ણ", Color: "blue"},
				{ID: "gu-r", Name: "Radha", NativeName: "રાધા", Color: "pink"},
				{ID: "gu-k", Name: "Krishna", NativeName: "કૃષ્ણ", Color: "blue"},
				{ID: "gu-rm", Name: "Ram", NativeName: "રામ", Color: "amber"},
				{ID: "gu-2", Name: "Jai Ambey", NativeName: "જય અંબે", Color: "orange"},
			},
			"mr": {
				{ID: "mr-1", Name: "Vitthal Vitthal", NativeName: "विठ्ठल विठ्ठल", Color: "blue"},
				{ID: "mr-r", Name: "Radha", NativeName: "राधा", Color: "pink"},
				{ID: "mr-k", Name: "Krishna", NativeName: "कृष्ण", Color: "blue"},
				{ID: "mr-rm", Name: "Ram", NativeName: "राम", Color: "amber"},
				{ID: "mr-2", Name: "Ganpati Bappa Morya", NativeName: "गणपती बाप्पा मोरया", Color: "orange"},
			},
			"kn": {
				{ID: "kn-1", Name: "Om Namah Shivaya", NativeName: "ಓಂ ನಮಃ ಶಿವಾಯ", Color: "orange"},
				{ID: "kn-r", Name: "Radha", NativeName: "ರಾಧಾ", Color: "pink"},
				{ID: "kn-k", Name: "Krishna", NativeName: "ಕೃಷ್ಣ", Color: "blue"},
				{ID: "kn-rm", Name: "Ram", NativeName: "ರಾಮ್", Color: "amber"},
				{ID: "kn-2", Name: "Jai Hanuman", NativeName: "ಜೈ ಹನುಮಾನ್", Color: "amber"},
			},
			"ml": {
				{ID: "ml-1", Name: "Swamiye Saranam Ayyappa", NativeName: "സ്വാമിയേ ശരണമയ്യപ്പ", Color: "slate"},
				{ID: "ml-r", Name: "Radha", NativeName: "രാധ", Color: "pink"},
				{ID: "ml-k", Name: "Krishna", NativeName: "കൃഷ്ണ", Color: "blue"},
				{ID: "ml-rm", Name: "Ram", NativeName: "രാം", Color: "amber"},
				{ID: "ml-2", Name: "Om Namo Narayanaya", NativeName: "ഓം നമോ നാരായണായ", Color: "emerald"},
			},
		},
	}
}
