package postgres

import (
	"strings"

	"github.com/puntoventa/bodega-api/internal/domain/repository"
)

// buildOrderBy arma la cláusula ORDER BY desde los sorts pedidos por el cliente.
// Cada clave se traduce por la whitelist del adaptador; las desconocidas se
// ignoran en silencio. Si ninguna sobrevive se usa el fallback. Nunca se
// interpola texto del cliente en el SQL: solo columnas de la whitelist.
func buildOrderBy(sorts []repository.Sort, whitelist map[string]string, fallback string) string {
	var parts []string
	for _, s := range sorts {
		col, ok := whitelist[s.Key]
		if !ok {
			continue
		}
		dir := "ASC"
		if strings.EqualFold(s.Order, "desc") {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}
