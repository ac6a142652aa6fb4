package api

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"

// Locale is the IETF language tag of the language a hosted Stripe page is
// displayed in. LocaleAuto lets the browser decide.
type Locale string

const (
	LocaleAuto  Locale = "auto"
	LocaleBg    Locale = "bg"
	LocaleCs    Locale = "cs"
	LocaleDa    Locale = "da"
	LocaleDe    Locale = "de"
	LocaleEl    Locale = "el"
	LocaleEn    Locale = "en"
	LocaleEnGB  Locale = "en-GB"
	LocaleEs    Locale = "es"
	LocaleEs419 Locale = "es-419"
	LocaleEt    Locale = "et"
	LocaleFi    Locale = "fi"
	LocaleFil   Locale = "fil"
	LocaleFr    Locale = "fr"
	LocaleFrCA  Locale = "fr-CA"
	LocaleHr    Locale = "hr"
	LocaleHu    Locale = "hu"
	LocaleId    Locale = "id"
	LocaleIt    Locale = "it"
	LocaleJa    Locale = "ja"
	LocaleKo    Locale = "ko"
	LocaleLt    Locale = "lt"
	LocaleLv    Locale = "lv"
	LocaleMs    Locale = "ms"
	LocaleMt    Locale = "mt"
	LocaleNb    Locale = "nb"
	LocaleNl    Locale = "nl"
	LocalePl    Locale = "pl"
	LocalePt    Locale = "pt"
	LocalePtBR  Locale = "pt-BR"
	LocaleRo    Locale = "ro"
	LocaleRu    Locale = "ru"
	LocaleSk    Locale = "sk"
	LocaleSl    Locale = "sl"
	LocaleSv    Locale = "sv"
	LocaleTh    Locale = "th"
	LocaleTr    Locale = "tr"
	LocaleVi    Locale = "vi"
	LocaleZh    Locale = "zh"
	LocaleZhHK  Locale = "zh-HK"
	LocaleZhTW  Locale = "zh-TW"
)

// Locales is the codec of Locale.
var Locales = enum.Open("Locale",
	LocaleAuto,
	LocaleBg,
	LocaleCs,
	LocaleDa,
	LocaleDe,
	LocaleEl,
	LocaleEn,
	LocaleEnGB,
	LocaleEs,
	LocaleEs419,
	LocaleEt,
	LocaleFi,
	LocaleFil,
	LocaleFr,
	LocaleFrCA,
	LocaleHr,
	LocaleHu,
	LocaleId,
	LocaleIt,
	LocaleJa,
	LocaleKo,
	LocaleLt,
	LocaleLv,
	LocaleMs,
	LocaleMt,
	LocaleNb,
	LocaleNl,
	LocalePl,
	LocalePt,
	LocalePtBR,
	LocaleRo,
	LocaleRu,
	LocaleSk,
	LocaleSl,
	LocaleSv,
	LocaleTh,
	LocaleTr,
	LocaleVi,
	LocaleZh,
	LocaleZhHK,
	LocaleZhTW,
)
