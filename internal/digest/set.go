package digest

import "strings"

// Set holds one digest per language, preserving insertion order. The pipeline
// always inserts "english" first; the report layer renders it first and then
// walks the remaining languages in insertion order.
type Set struct {
	langs []string
	texts map[string]string
}

func NewSet() *Set {
	return &Set{texts: make(map[string]string)}
}

// Add stores text under the lowercased language name, replacing any previous
// entry without changing its position.
func (s *Set) Add(lang, text string) {
	lang = strings.ToLower(lang)
	if _, ok := s.texts[lang]; !ok {
		s.langs = append(s.langs, lang)
	}
	s.texts[lang] = text
}

func (s *Set) Get(lang string) string {
	return s.texts[strings.ToLower(lang)]
}

// Languages returns the language names in insertion order.
func (s *Set) Languages() []string {
	return append([]string(nil), s.langs...)
}

func (s *Set) Len() int {
	return len(s.langs)
}

// English returns the digest stored under "english", or "en" as a fallback.
func (s *Set) English() string {
	if text, ok := s.texts["english"]; ok {
		return text
	}
	return s.texts["en"]
}

// IsEnglish reports whether a language name denotes the English entry.
func IsEnglish(lang string) bool {
	lang = strings.ToLower(lang)
	return lang == "english" || lang == "en"
}
