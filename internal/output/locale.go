package output

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// NewTranslator returns a printer for the BCP 47 tag locale. Unparseable
// tags fall back to DefaultLocale and are reported through the logger.
func NewTranslator(locale string) *message.Printer {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		Warn("unknown locale, using default", "locale", locale, "default", DefaultLocale)
		tag = language.English
	}
	return message.NewPrinter(tag)
}
