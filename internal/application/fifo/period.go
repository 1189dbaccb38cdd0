package fifo

import (
	"fmt"
	"time"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/domain"
)

const dateLayout = "2006-01-02"

// parsePeriod interpreta start_date/end_date (YYYY-MM-DD). A diferencia de los reportes de
// analítica no hay valores por defecto: vacío significa "sin filtro" y la fuente devuelve todo.
func parsePeriod(startStr, endStr string) (dto.FIFOPeriod, error) {
	var p dto.FIFOPeriod
	var err error

	if startStr != "" {
		p.Start, err = time.Parse(dateLayout, startStr)
		if err != nil {
			return dto.FIFOPeriod{}, fmt.Errorf("%w: start_date inválido: %v", domain.ErrInvalidInput, err)
		}
	}
	if endStr != "" {
		p.End, err = time.Parse(dateLayout, endStr)
		if err != nil {
			return dto.FIFOPeriod{}, fmt.Errorf("%w: end_date inválido: %v", domain.ErrInvalidInput, err)
		}
		p.End = p.End.Add(23*time.Hour + 59*time.Minute + 59*time.Second) // inclusive hasta el final del día
	}
	if !p.Start.IsZero() && !p.End.IsZero() && p.Start.After(p.End) {
		return dto.FIFOPeriod{}, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return p, nil
}
