// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user-facing messages in the operator's language.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	registerCatalog()

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("t16: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage replaces the process printer with one for the given language.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// Parse interprets a BCP 47 name, such as "zh-CN", and selects the closest
// catalog language.
func Parse(name string) (tag language.Tag, err error) {
	tag, err = language.Parse(name)
	if err != nil {
		return
	}

	_, index, _ := message.DefaultCatalog.Matcher().Match(tag)
	tag = message.DefaultCatalog.Languages()[index]
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
