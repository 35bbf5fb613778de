// Package translate formats user-facing messages for the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

const fallbackLocale = "en-US"

// printer is resolved on first use, so package-level error values can be
// built during init without ordering concerns.
var printer = sync.OnceValue(func() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ls8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{fallbackLocale}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
})

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}
