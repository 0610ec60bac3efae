package dto

type SettingsOutput struct {
	LanguageID       string
	LanguageName     string
	ChantID          string
	ChantName        string
	Transliteration  string
	CustomName       string
	CustomNativeName string
	GoalType         string
	GoalValue        int
}

type CustomChantInput struct {
	Name       string
	NativeName string
}

type ChantOutput struct {
	ID         string
	Name       string
	NativeName string
	Color      string
}

type LanguageOutput struct {
	ID         string
	Name       string
	NativeName string
	Chants     []ChantOutput
}

type CatalogOutput struct {
	Languages []LanguageOutput
}
