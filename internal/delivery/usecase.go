package delivery

import (
	"context"

	"mirador/internal/pipeline"
)

type deliveryUseCase struct {
	service Service
}

func NewUseCase(service Service) UseCase {
	return &deliveryUseCase{service: service}
}

func (uc *deliveryUseCase) States(ctx context.Context, req StatesRequest) (*pipeline.Table, error) {
	summaries, err := uc.service.States(ctx, req)
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Entregas tardías por estado",
		"estado", "total_pedidos", "late_orders", "late_percentage", "avg_late_days", "entrega_prom_dias",
	).WithAxes("estado", req.RankBy)

	for _, s := range summaries {
		table.Append(
			s.State,
			s.TotalOrders,
			s.LateOrders,
			pipeline.Cell(s.LatePercentage),
			pipeline.Cell(s.AvgLateDays),
			pipeline.Cell(s.EntregaPromDias),
		)
	}
	return table, nil
}
