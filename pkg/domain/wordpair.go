package domain

import "time"

// WordPair is a word or short phrase in a source language together with its
// counterpart in a target language, owned by a single user. Pairs are never
// modified after creation.
type WordPair struct {
	ID             WordPairID
	UserID         UserID
	TargetText     string
	SourceText     string
	TargetLanguage string
	SourceLanguage string
	CreatedAt      time.Time
}

// WordPairFields carries the caller-supplied part of a word pair.
type WordPairFields struct {
	TargetText     string
	SourceText     string
	TargetLanguage string
	SourceLanguage string
}

// NewWordPair builds a word pair owned by userID. Texts are title-cased and
// language codes lower-cased.
func NewWordPair(ids IDGenerator, clock Clock, userID UserID, fields WordPairFields) WordPair {
	return WordPair{
		ID:             WordPairID(ids.NewID()),
		UserID:         userID,
		TargetText:     TitleCase(fields.TargetText),
		SourceText:     TitleCase(fields.SourceText),
		TargetLanguage: LanguageCode(fields.TargetLanguage),
		SourceLanguage: LanguageCode(fields.SourceLanguage),
		CreatedAt:      Timestamp(clock.Now()),
	}
}
