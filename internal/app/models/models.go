package models

// Program is the training program a cohort runs or a student follows
type Program string

const (
	ProgramWebDev        Program = "Web Dev"
	ProgramUXUI          Program = "UX/UI"
	ProgramDataAnalytics Program = "Data Analytics"
	ProgramCybersecurity Program = "Cybersecurity"
)

// Programs lists every accepted Program
var Programs = []Program{ProgramWebDev, ProgramUXUI, ProgramDataAnalytics, ProgramCybersecurity}

// IsValid reports whether p is one of Programs
func (p Program) IsValid() bool {
	for _, v := range Programs {
		if p == v {
			return true
		}
	}
	return false
}

// Campus is where a cohort takes place
type Campus string

const (
	CampusMadrid    Campus = "Madrid"
	CampusBarcelona Campus = "Barcelona"
	CampusMiami     Campus = "Miami"
	CampusParis     Campus = "Paris"
	CampusBerlin    Campus = "Berlin"
	CampusAmsterdam Campus = "Amsterdam"
	CampusLisbon    Campus = "Lisbon"
	CampusRemote    Campus = "Remote"
)

// Campuses lists every accepted Campus
var Campuses = []Campus{
	CampusMadrid, CampusBarcelona, CampusMiami, CampusParis,
	CampusBerlin, CampusAmsterdam, CampusLisbon, CampusRemote,
}

// IsValid reports whether c is one of Campuses
func (c Campus) IsValid() bool {
	for _, v := range Campuses {
		if c == v {
			return true
		}
	}
	return false
}

// Format is the cohort schedule format
type Format string

const (
	FormatFullTime Format = "Full Time"
	FormatPartTime Format = "Part Time"
)

// IsValid reports whether f is a known Format
func (f Format) IsValid() bool {
	return f == FormatFullTime || f == FormatPartTime
}

// Language is a language a student speaks
type Language string

const (
	LanguageEnglish    Language = "English"
	LanguageSpanish    Language = "Spanish"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguagePortuguese Language = "Portuguese"
	LanguageDutch      Language = "Dutch"
	LanguageOther      Language = "Other"
)

// Languages lists every accepted Language
var Languages = []Language{
	LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman,
	LanguagePortuguese, LanguageDutch, LanguageOther,
}

// IsValid reports whether l is one of Languages
func (l Language) IsValid() bool {
	for _, v := range Languages {
		if l == v {
			return true
		}
	}
	return false
}

// UniqueLanguages drops repeated entries, keeping first occurrences in order
func UniqueLanguages(langs []Language) []Language {
	if langs == nil {
		return nil
	}
	seen := make(map[Language]struct{}, len(langs))
	out := make([]Language, 0, len(langs))
	for _, l := range langs {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
