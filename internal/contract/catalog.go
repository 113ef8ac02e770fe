package contract

import "github.com/alexanderramin/peak/internal/domain"

type CategoryView struct {
	Category domain.Category
	Label    string
	Tier     domain.Tier
	Keywords []string
	Nudges   []string
}

type CatalogResponse struct {
	Version     string
	FillerNudge string
	Categories  []CategoryView
}
