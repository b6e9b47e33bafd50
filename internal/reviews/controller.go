package reviews

import (
	"net/http"

	"mirador/internal/commons"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Controller struct {
	useCase UseCase
	logger  *zap.Logger
}

func NewController(useCase UseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleStates(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	table, err := c.useCase.States(r.Context())
	if err != nil {
		commons.WriteUseCaseError(w, logger, traceID, err)
		return
	}
	commons.WriteJSON(w, logger, http.StatusOK, table)
}
