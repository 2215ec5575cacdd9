// Package i18n resolves localized user-facing messages for error codes.
package i18n

import (
	"bytes"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the locale every error code has a message for.
const BaseLocale = "en-US"

var supported = []language.Tag{
	language.AmericanEnglish,    // en-US, must stay first: matcher fallback
	language.BrazilianPortuguese, // pt-BR
}

var matcher = language.NewMatcher(supported)

var localeNames = map[language.Tag]string{
	language.AmericanEnglish:     "en-US",
	language.BrazilianPortuguese: "pt-BR",
}

// catalogs maps locale -> error code -> message template.
var catalogs = map[string]map[string]string{
	"en-US": {
		"UNKNOWN":                        "Something went wrong. Please try again.",
		"SCRAMBLE_INDEX_OUT_OF_RANGE":    "Index {{.index}} is beyond the identifier space.",
		"SCRAMBLE_EXPONENTIATOR_MISSING": "The identifier service is not configured correctly.",
		"SCRAMBLE_BASE_OFFSET_INVALID":   "Base offset {{.offset}} is not valid.",
		"NOT_FOUND":                      "The requested resource was not found.",
	},
	"pt-BR": {
		"UNKNOWN":                        "Algo deu errado. Tente novamente.",
		"SCRAMBLE_INDEX_OUT_OF_RANGE":    "O índice {{.index}} está além do espaço de identificadores.",
		"SCRAMBLE_EXPONENTIATOR_MISSING": "O serviço de identificadores não está configurado corretamente.",
		"SCRAMBLE_BASE_OFFSET_INVALID":   "O deslocamento base {{.offset}} não é válido.",
		"NOT_FOUND":                      "O recurso solicitado não foi encontrado.",
	},
}

// ResolveLocale maps a requested locale (BCP 47, possibly a list) onto a
// supported catalog locale, falling back to en-US.
func ResolveLocale(locale string) string {
	if locale == "" {
		return BaseLocale
	}
	tag, _ := language.MatchStrings(matcher, locale)
	if name, ok := localeNames[tag]; ok {
		return name
	}
	// The matcher can return a refined variant of a supported tag; walk up
	// to the supported parent.
	for t := tag; t != language.Und; t = t.Parent() {
		if name, ok := localeNames[t]; ok {
			return name
		}
	}
	return BaseLocale
}

// Message renders the message template for code in the given locale.
// Unknown locales fall back to en-US; unknown codes fall back to the code
// itself. Templates always execute, so variables without metadata render
// empty rather than failing.
func Message(locale, code string, metadata map[string]string) string {
	catalog, ok := catalogs[locale]
	if !ok {
		catalog = catalogs[BaseLocale]
	}
	raw, ok := catalog[code]
	if !ok {
		if raw, ok = catalogs[BaseLocale][code]; !ok {
			return code
		}
	}

	tmpl, err := template.New("msg").Parse(raw)
	if err != nil {
		return raw
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return raw
	}
	return buf.String()
}
