package delivery

import (
	"net/http"

	"mirador/internal/commons"
	apperrors "mirador/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultStateLimit = 10

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

	req, err := c.parseStatesRequest(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("invalid delivery states request", zap.Error(err))
		commons.WriteValidationError(w, logger, traceID, ve.Message, ve.Details...)
		return
	}

	table, err := c.useCase.States(r.Context(), req)
	if err != nil {
		commons.WriteUseCaseError(w, logger, traceID, err)
		return
	}
	commons.WriteJSON(w, logger, http.StatusOK, table)
}

func (c *Controller) parseStatesRequest(r *http.Request) (StatesRequest, error) {
	q := r.URL.Query()

	limit, err := commons.ParseIntParam(q.Get("limit"), defaultStateLimit)
	if err != nil || limit <= 0 {
		msg := "limit must be a positive integer"
		return StatesRequest{}, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "limit",
			Message: msg,
		})
	}

	rankBy := q.Get("rankBy")
	switch rankBy {
	case "":
		rankBy = RankByLatePercentage
	case RankByLatePercentage, RankByDeliveryDays:
	default:
		msg := "rankBy must be late_percentage or entrega_prom_dias"
		return StatesRequest{}, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "rankBy",
			Message: msg,
		})
	}

	order := q.Get("order")
	if order != "" && order != "asc" && order != "desc" {
		msg := "order must be asc or desc"
		return StatesRequest{}, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "order",
			Message: msg,
		})
	}

	from, err := commons.ParseDateParam(q.Get("from"))
	if err != nil {
		msg := "from must be a YYYY-MM-DD date"
		return StatesRequest{}, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "from",
			Message: msg,
		})
	}
	to, err := commons.ParseDateParam(q.Get("to"))
	if err != nil {
		msg := "to must be a YYYY-MM-DD date"
		return StatesRequest{}, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "to",
			Message: msg,
		})
	}

	return StatesRequest{
		Limit:     limit,
		RankBy:    rankBy,
		Ascending: order == "asc",
		From:      from,
		To:        to,
	}, nil
}
