package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys used by the landing site templates.
const (
	KeyMetaDescription = "meta.description"

	KeyHeadingPrefix = "landing.heading_prefix"
	KeySubtitle      = "landing.subtitle"
	KeyCTADashboard  = "landing.cta.dashboard"
	KeyCTAKiosk      = "landing.cta.kiosk"

	KeyFeatureLandingTitle       = "feature.landing.title"
	KeyFeatureLandingDescription = "feature.landing.description"
	KeyFeatureDashTitle          = "feature.dashboard.title"
	KeyFeatureDashDescription    = "feature.dashboard.description"
	KeyFeatureKioskTitle         = "feature.kiosk.title"
	KeyFeatureKioskDescription   = "feature.kiosk.description"

	KeyNotFoundTitle   = "notfound.title"
	KeyNotFoundMessage = "notfound.message"

	KeyFlashLangUnsupported = "flash.lang_unsupported"
)

// BrandName is shown verbatim in every language.
const BrandName = "Kanbananza"

var english = map[string]string{
	KeyMetaDescription: "Kanbananza is the ultimate kanban board management platform for teams and organizations.",

	KeyHeadingPrefix: "Welcome to",
	KeySubtitle:      "The ultimate kanban board management platform for teams and organizations.",
	KeyCTADashboard:  "Go to Dashboard",
	KeyCTAKiosk:      "View Kiosk",

	KeyFeatureLandingTitle:       "Landing Page",
	KeyFeatureLandingDescription: "Public-facing website for kanbananza.com",
	KeyFeatureDashTitle:          "Dashboard",
	KeyFeatureDashDescription:    "Admin interface for managing kanban boards",
	KeyFeatureKioskTitle:         "Kiosk",
	KeyFeatureKioskDescription:   "Public display for showing kanban boards",

	KeyNotFoundTitle:   "Page not found",
	KeyNotFoundMessage: "The page you are looking for does not exist.",

	KeyFlashLangUnsupported: "Language %q is not available.",
}

var brazilianPortuguese = map[string]string{
	KeyMetaDescription: "Kanbananza é a plataforma definitiva de gestão de quadros kanban para equipes e organizações.",

	KeyHeadingPrefix: "Bem-vindo ao",
	KeySubtitle:      "A plataforma definitiva de gestão de quadros kanban para equipes e organizações.",
	KeyCTADashboard:  "Ir para o Painel",
	KeyCTAKiosk:      "Ver Quiosque",

	KeyFeatureLandingTitle:       "Página Inicial",
	KeyFeatureLandingDescription: "Site público de kanbananza.com",
	KeyFeatureDashTitle:          "Painel",
	KeyFeatureDashDescription:    "Interface administrativa para gerenciar quadros kanban",
	KeyFeatureKioskTitle:         "Quiosque",
	KeyFeatureKioskDescription:   "Exibição pública de quadros kanban",

	KeyNotFoundTitle:   "Página não encontrada",
	KeyNotFoundMessage: "A página que você procura não existe.",

	KeyFlashLangUnsupported: "O idioma %q não está disponível.",
}

// newCatalog builds the message catalog shared by every Localizer.
func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder()
	for key, msg := range english {
		_ = b.SetString(language.English, key, msg)
	}
	for key, msg := range brazilianPortuguese {
		_ = b.SetString(language.BrazilianPortuguese, key, msg)
	}
	return b
}
