package sellers

import (
	"context"
	"net/http"

	"mirador/internal/commons"
	apperrors "mirador/internal/errors"
	"mirador/internal/pipeline"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultViewLimit = 10

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

func (c *Controller) HandleTopSellers(w http.ResponseWriter, r *http.Request) {
	c.handleView(w, r, c.useCase.TopSellers)
}

func (c *Controller) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	c.handleView(w, r, c.useCase.Revenue)
}

func (c *Controller) HandleCategories(w http.ResponseWriter, r *http.Request) {
	c.handleView(w, r, c.useCase.Categories)
}

func (c *Controller) HandleFreight(w http.ResponseWriter, r *http.Request) {
	c.handleView(w, r, c.useCase.Freight)
}

func (c *Controller) HandleScores(w http.ResponseWriter, r *http.Request) {
	c.handleView(w, r, c.useCase.Scores)
}

func (c *Controller) HandleBounds(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	states := commons.SplitListParam(r.URL.Query().Get("states"))
	bounds, err := c.useCase.Bounds(r.Context(), states)
	if err != nil {
		commons.WriteUseCaseError(w, logger, traceID, err)
		return
	}
	commons.WriteJSON(w, logger, http.StatusOK, bounds)
}

func (c *Controller) handleView(w http.ResponseWriter, r *http.Request, view func(context.Context, ViewRequest) (*pipeline.Table, error)) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	req, err := c.parseViewRequest(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("invalid sellers view request", zap.Error(err))
		commons.WriteValidationError(w, logger, traceID, ve.Message, ve.Details...)
		return
	}

	table, err := view(r.Context(), req)
	if err != nil {
		commons.WriteUseCaseError(w, logger, traceID, err)
		return
	}
	commons.WriteJSON(w, logger, http.StatusOK, table)
}

func (c *Controller) parseViewRequest(r *http.Request) (ViewRequest, error) {
	q := r.URL.Query()

	limit, err := commons.ParseIntParam(q.Get("limit"), defaultViewLimit)
	if err != nil || limit <= 0 {
		msg := "limit must be a positive integer"
		return ViewRequest{}, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "limit",
			Message: msg,
		})
	}

	filter := pipeline.SalesFilter{
		States: commons.SplitListParam(q.Get("states")),
	}

	ranges := []struct {
		field string
		dest  *pipeline.NumRange
	}{
		{"Score", &filter.Score},
		{"Price", &filter.TotalPrice},
		{"Freight", &filter.Freight},
		{"Orders", &filter.OrderCount},
	}
	for _, rg := range ranges {
		min, err := commons.ParseFloatParam(q.Get("min" + rg.field))
		if err != nil {
			return ViewRequest{}, rangeValidationError("min" + rg.field)
		}
		max, err := commons.ParseFloatParam(q.Get("max" + rg.field))
		if err != nil {
			return ViewRequest{}, rangeValidationError("max" + rg.field)
		}
		if min != nil && max != nil && *min > *max {
			msg := "min" + rg.field + " must not exceed max" + rg.field
			return ViewRequest{}, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
				Field:   "min" + rg.field,
				Message: msg,
			})
		}
		rg.dest.Min = min
		rg.dest.Max = max
	}

	return ViewRequest{Filter: filter, Limit: limit}, nil
}

func rangeValidationError(field string) error {
	msg := field + " must be a number"
	return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
		Field:   field,
		Message: msg,
	})
}
