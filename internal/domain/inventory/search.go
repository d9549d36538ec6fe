// Package inventory agrupa los servicios puros de dominio sobre el agregado:
// búsqueda rankeada, filtro de historial y agregación para el gráfico.
// Ninguna función de este paquete tiene efectos secundarios.
package inventory

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/tu-usuario/relojes/internal/domain/entity"
)

// Niveles de coincidencia, de mejor a peor. El orden entre niveles es parte
// del contrato; dentro de cada nivel se ordena por distancia de edición y
// luego por código.
const (
	TierExact           = 0 // código idéntico
	TierCaseInsensitive = 1 // idéntico ignorando mayúsculas
	TierPrefix          = 2 // el código empieza por la consulta
	TierSubstring       = 3 // la consulta aparece dentro del código
	TierNone            = 4 // sin coincidencia (solo con consulta vacía se listan todos)
)

// SearchResult es un candidato de búsqueda con su ranking.
type SearchResult struct {
	Item     entity.Item
	Tier     int
	Distance int // distancia de edición entre consulta y código
}

// Search rankea los items del inventario contra la consulta: exacto →
// exacto ignorando mayúsculas → prefijo → substring (ambos insensibles a
// mayúsculas). Con consulta vacía devuelve todos los items por código.
func Search(inv *entity.Inventory, query string) []SearchResult {
	query = strings.TrimSpace(query)
	items := inv.Items()

	if query == "" {
		out := make([]SearchResult, 0, len(items))
		for _, it := range items {
			out = append(out, SearchResult{Item: it, Tier: TierNone})
		}
		return out
	}

	lowQuery := strings.ToLower(query)
	out := make([]SearchResult, 0, len(items))
	for _, it := range items {
		tier := matchTier(it.Code, query, lowQuery)
		if tier == TierNone {
			continue
		}
		out = append(out, SearchResult{
			Item:     it,
			Tier:     tier,
			Distance: levenshtein.ComputeDistance(lowQuery, strings.ToLower(it.Code)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Item.Code < out[j].Item.Code
	})
	return out
}

func matchTier(code, query, lowQuery string) int {
	switch {
	case code == query:
		return TierExact
	case strings.EqualFold(code, query):
		return TierCaseInsensitive
	case strings.HasPrefix(strings.ToLower(code), lowQuery):
		return TierPrefix
	case strings.Contains(strings.ToLower(code), lowQuery):
		return TierSubstring
	}
	return TierNone
}

// SuggestCodes ordena los códigos candidatos por distancia de edición a la
// consulta (sugerencias del filtro de historial). Con consulta vacía se
// conserva el orden alfabético de entrada.
func SuggestCodes(codes []string, query string) []SearchResult {
	query = strings.TrimSpace(query)
	out := make([]SearchResult, 0, len(codes))
	for _, c := range codes {
		r := SearchResult{Item: entity.Item{Code: c}}
		if query != "" {
			r.Distance = levenshtein.ComputeDistance(query, c)
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Item.Code < out[j].Item.Code
	})
	return out
}
