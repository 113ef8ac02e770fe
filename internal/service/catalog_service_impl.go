package service

import (
	"context"

	"github.com/alexanderramin/peak/internal/classify"
	"github.com/alexanderramin/peak/internal/contract"
	"github.com/alexanderramin/peak/internal/domain"
	"github.com/alexanderramin/peak/internal/knowledge"
)

type catalogService struct{}

func NewCatalogService() CatalogService {
	return catalogService{}
}

// Catalog lists every category with its keywords and nudges. The default
// category has no keywords.
func (catalogService) Catalog(_ context.Context) (*contract.CatalogResponse, error) {
	keywords := make(map[domain.Category][]string)
	for _, r := range classify.Rules() {
		keywords[r.Category] = r.Keywords
	}

	resp := &contract.CatalogResponse{
		Version:     knowledge.Version,
		FillerNudge: knowledge.FillerNudge,
	}
	for _, c := range knowledge.Categories() {
		resp.Categories = append(resp.Categories, contract.CategoryView{
			Category: c,
			Label:    c.Label(),
			Tier:     c.Tier(),
			Keywords: keywords[c],
			Nudges:   knowledge.Nudges(c),
		})
	}
	return resp, nil
}
