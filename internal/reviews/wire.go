package reviews

import (
	"mirador/internal/dataset"

	"go.uber.org/zap"
)

func NewModule(store *dataset.Store, logger *zap.Logger) *Controller {
	svc := NewService(store)
	uc := NewUseCase(svc)
	return NewController(uc, logger)
}
