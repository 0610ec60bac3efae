package dto

type TransliterateInput struct {
	Text     string
	Language string
}

type TransliterateOutput struct {
	Text       string
	NativeName string
	Plugin     string
}

type DoctorResult struct {
	Name            string
	Version         string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}
