package ports

import (
	"cost-intelligence-service/internal/domain"
	"io"
)

// Renders a named chart of a report.
type ChartRenderer interface {
	Render(w io.Writer, name string, rep *domain.Report) error
	ContentType() string
	// Chart names in display order.
	Names() []string
}
