package geography

import (
	"net/http"
	"time"

	"mirador/internal/commons"
	apperrors "mirador/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultStateLimit = 5

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

func (c *Controller) HandleTopStates(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	req, err := c.parseTopStatesRequest(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("invalid top states request", zap.Error(err))
		commons.WriteValidationError(w, logger, traceID, ve.Message, ve.Details...)
		return
	}

	table, err := c.useCase.TopStates(r.Context(), req)
	if err != nil {
		commons.WriteUseCaseError(w, logger, traceID, err)
		return
	}
	commons.WriteJSON(w, logger, http.StatusOK, table)
}

func (c *Controller) HandleCities(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	from, to, err := parseDateWindow(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("invalid cities request", zap.Error(err))
		commons.WriteValidationError(w, logger, traceID, ve.Message, ve.Details...)
		return
	}

	req := CitiesRequest{
		State: r.URL.Query().Get("state"),
		From:  from,
		To:    to,
	}

	table, err := c.useCase.Cities(r.Context(), req)
	if err != nil {
		commons.WriteUseCaseError(w, logger, traceID, err)
		return
	}
	commons.WriteJSON(w, logger, http.StatusOK, table)
}

func (c *Controller) parseTopStatesRequest(r *http.Request) (TopStatesRequest, error) {
	limit, err := commons.ParseIntParam(r.URL.Query().Get("limit"), defaultStateLimit)
	if err != nil || limit <= 0 {
		msg := "limit must be a positive integer"
		return TopStatesRequest{}, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "limit",
			Message: msg,
		})
	}

	from, to, err := parseDateWindow(r)
	if err != nil {
		return TopStatesRequest{}, err
	}

	return TopStatesRequest{Limit: limit, From: from, To: to}, nil
}

func parseDateWindow(r *http.Request) (from, to *time.Time, err error) {
	from, err = commons.ParseDateParam(r.URL.Query().Get("from"))
	if err != nil {
		msg := "from must be a YYYY-MM-DD date"
		return nil, nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "from",
			Message: msg,
		})
	}
	to, err = commons.ParseDateParam(r.URL.Query().Get("to"))
	if err != nil {
		msg := "to must be a YYYY-MM-DD date"
		return nil, nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "to",
			Message: msg,
		})
	}
	return from, to, nil
}
