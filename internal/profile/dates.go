package profile

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// dateLayout pairs a monday locale with the layouts a browser's
// toLocaleDateString produces for long month, numeric day/year and
// 2-digit hour/minute.
type dateLayout struct {
	locale monday.Locale
	full   string
	day    string
}

// The first entry is the fallback for unknown or unparseable locales.
var (
	supportedLocales = []language.Tag{language.Indonesian, language.AmericanEnglish}
	localeLayouts    = []dateLayout{
		{locale: monday.LocaleIdID, full: "2 January 2006 pukul 15.04", day: "2 January 2006"},
		{locale: monday.LocaleEnUS, full: "January 2, 2006 at 03:04 PM", day: "January 2, 2006"},
	}
	localeMatcher = language.NewMatcher(supportedLocales)
)

func layoutFor(locale string) dateLayout {
	tag, err := language.Parse(locale)
	if err != nil {
		return localeLayouts[0]
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return localeLayouts[0]
	}
	return localeLayouts[idx]
}

// FormatDateTime renders t with date and time for locale, e.g.
// "16 Oktober 2026 pukul 14.05" for id-ID.
func FormatDateTime(t time.Time, locale string) string {
	l := layoutFor(locale)
	return monday.Format(t, l.full, l.locale)
}

// FormatDate renders the date part of t for locale, e.g. "16 Oktober 2026".
func FormatDate(t time.Time, locale string) string {
	l := layoutFor(locale)
	return monday.Format(t, l.day, l.locale)
}
