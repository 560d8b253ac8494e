package domain

// Translation is the result of translating a text. It is never persisted.
type Translation struct {
	SourceText     string
	TargetText     string
	SourceLanguage string
	TargetLanguage string
}
