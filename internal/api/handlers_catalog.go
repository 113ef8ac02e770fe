package api

import (
	"net/http"

	"github.com/alexanderramin/peak/internal/knowledge"
	"github.com/alexanderramin/peak/internal/service"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type categoryJSON struct {
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Tier     string   `json:"tier"`
	Keywords []string `json:"keywords"`
	Nudges   []string `json:"nudges"`
}

type catalogJSON struct {
	Version     string         `json:"version"`
	FillerNudge string         `json:"filler_nudge"`
	Categories  []categoryJSON `json:"categories"`
}

// List handles GET /categories
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalog.Catalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternal, err.Error())
		return
	}

	out := catalogJSON{Version: resp.Version, FillerNudge: resp.FillerNudge}
	for _, c := range resp.Categories {
		kw := c.Keywords
		if kw == nil {
			kw = []string{}
		}
		out.Categories = append(out.Categories, categoryJSON{
			Category: string(c.Category),
			Label:    c.Label,
			Tier:     string(c.Tier),
			Keywords: kw,
			Nudges:   c.Nudges,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Health handles GET /health
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":         "ok",
		"knowledge_base": knowledge.Version,
	})
}
