package sellers

import "mirador/internal/pipeline"

type ViewRequest struct {
	Filter pipeline.SalesFilter
	Limit  int
}
