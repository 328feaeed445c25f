package dto

import "encoding/json"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple de una operación.
type MessageResponse struct {
	Message string `json:"message"`
}

// PageMeta metadatos de página en respuestas de listado.
type PageMeta struct {
	PageIndex int   `json:"pageIndex"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
}

// SortSpec un criterio de orden pedido por el cliente: {"key":"date","order":"desc"}.
type SortSpec struct {
	Key   string `json:"key"`
	Order string `json:"order"`
}

// ParseSort decodifica el parámetro sort (JSON array de SortSpec). Entrada
// inválida o vacía devuelve nil: el listado cae al orden por defecto.
func ParseSort(raw string) []SortSpec {
	if raw == "" {
		return nil
	}
	var specs []SortSpec
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil
	}
	return specs
}
