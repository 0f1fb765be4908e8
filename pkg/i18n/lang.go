package i18n

import "golang.org/x/text/language"

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// MatchLanguage picks the supported language closest to want, which may be a
// single BCP 47 tag ("es-MX") or an Accept-Language style list
// ("es-MX,en;q=0.5"). It returns fallback when nothing matches.
func MatchLanguage(want string, supported []string, fallback string) string {
	if want == "" || len(supported) == 0 {
		return fallback
	}

	prefs, _, err := language.ParseAcceptLanguage(want)
	if err != nil || len(prefs) == 0 {
		return fallback
	}

	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = language.Make(s)
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}
