// Package i18n resolves the request language and prints localized page copy.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var (
	supported = []language.Tag{language.English, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
	messages  catalog.Catalog = newCatalog()
)

// Supported returns the list of supported language tags. The first entry is
// the default.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supported[0]
}

// Localizer prints catalog messages for a single language.
type Localizer struct {
	tag      language.Tag
	printer  *message.Printer
	fallback *message.Printer
}

// New returns a Localizer for tag. Unsupported tags are matched to the closest
// supported language.
func New(tag language.Tag) Localizer {
	tag = Match(tag)
	return Localizer{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(messages)),
		fallback: message.NewPrinter(DefaultTag(), message.Catalog(messages)),
	}
}

// Default returns the Localizer for the default language.
func Default() Localizer {
	return New(DefaultTag())
}

// Tag returns the language the Localizer prints.
func (l Localizer) Tag() language.Tag {
	return l.tag
}

// Lang returns the BCP 47 string of the Localizer's language.
func (l Localizer) Lang() string {
	return l.tag.String()
}

// T prints the message for key. Keys missing from the active language use the
// default language.
func (l Localizer) T(key string, args ...any) string {
	if l.printer == nil {
		return Default().T(key, args...)
	}
	if out := l.printer.Sprintf(key, args...); out != key {
		return out
	}
	return l.fallback.Sprintf(key, args...)
}

// Match maps tag to the closest supported language tag.
func Match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultTag()
	}
	return supported[idx]
}

// ParseTag parses value and reports whether it names a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return language.Und, false
	}
	return supported[idx], true
}

// Resolution describes how the request language was chosen.
type Resolution struct {
	Tag language.Tag
	// FromQuery is set when the lang query parameter selected Tag.
	FromQuery bool
	// Rejected holds an unsupported lang query value.
	Rejected string
}

// ResolveTag determines the language for the request. The lang query
// parameter wins, then the stored preference, then Accept-Language.
func ResolveTag(r *http.Request, stored string) Resolution {
	if r == nil {
		return Resolution{Tag: DefaultTag()}
	}
	var res Resolution
	if raw := strings.TrimSpace(r.URL.Query().Get(LangParam)); raw != "" {
		if tag, ok := ParseTag(raw); ok {
			return Resolution{Tag: tag, FromQuery: true}
		}
		res.Rejected = raw
	}
	if tag, ok := ParseTag(stored); ok {
		res.Tag = tag
		return res
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				res.Tag = supported[idx]
				return res
			}
		}
	}
	res.Tag = DefaultTag()
	return res
}
