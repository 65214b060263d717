package extract

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yml
var defaultVocabulary []byte

// Rule maps any of its substrings to Kind.
type Rule struct {
	Kind  Kind     `yaml:"kind"`
	Match []string `yaml:"match"`
}

// Vocabulary is the mapping from yt-dlp's error text to failure kinds, plus
// the user-facing message for each kind. yt-dlp's wording changes between
// releases, so the rules are data rather than code.
type Vocabulary struct {
	Rules    []Rule          `yaml:"rules"`
	Messages map[Kind]string `yaml:"messages"`
}

func DefaultVocabulary() *Vocabulary {
	v, err := ParseVocabulary(defaultVocabulary)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary.yml: %v", err))
	}
	return v
}

func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	for i, r := range v.Rules {
		if !matchable[r.Kind] {
			return nil, fmt.Errorf("rule %d: kind %q can't be matched from error text", i, r.Kind)
		}
	}
	for k := range v.Messages {
		if !known[k] {
			return nil, fmt.Errorf("message for unknown kind %q", k)
		}
	}
	return &v, nil
}

// LoadVocabulary reads an override file. Its rules replace the defaults when
// present; its messages are merged over the default messages.
func LoadVocabulary(path string) (*Vocabulary, error) {
	base := DefaultVocabulary()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	override, err := ParseVocabulary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(override.Rules) > 0 {
		base.Rules = override.Rules
	}
	for k, msg := range override.Messages {
		base.Messages[k] = msg
	}
	return base, nil
}

// Classify returns the kind of the first rule matching text, or Unknown.
func (v *Vocabulary) Classify(text string) Kind {
	lower := strings.ToLower(text)
	for _, r := range v.Rules {
		for _, m := range r.Match {
			if m != "" && strings.Contains(lower, strings.ToLower(m)) {
				return r.Kind
			}
		}
	}
	return Unknown
}

func (v *Vocabulary) Message(k Kind) string {
	if msg, ok := v.Messages[k]; ok && msg != "" {
		return msg
	}
	if msg, ok := v.Messages[Unknown]; ok && msg != "" {
		return msg
	}
	return genericMessage
}
