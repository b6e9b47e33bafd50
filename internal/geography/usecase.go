package geography

import (
	"context"

	"mirador/internal/pipeline"
)

type geographyUseCase struct {
	service Service
}

func NewUseCase(service Service) UseCase {
	return &geographyUseCase{service: service}
}

func (uc *geographyUseCase) TopStates(ctx context.Context, req TopStatesRequest) (*pipeline.Table, error) {
	summaries, err := uc.service.TopStates(ctx, req.Limit, pipeline.DateRange{From: req.From, To: req.To})
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Estados con más clientes",
		"estado", "num_clientes", "num_pedidos", "porcentaje_pedidos", "ratio_pedidos_cliente", "entrega_prom_dias",
	).WithAxes("estado", "num_clientes")

	for _, s := range summaries {
		table.Append(
			s.State,
			s.NumClientes,
			s.NumPedidos,
			s.PorcentajePedidos,
			pipeline.Cell(s.RatioPedidosCliente),
			pipeline.Cell(s.EntregaPromDias),
		)
	}
	return table, nil
}

func (uc *geographyUseCase) Cities(ctx context.Context, req CitiesRequest) (*pipeline.Table, error) {
	summaries, err := uc.service.Cities(ctx, req.State, pipeline.DateRange{From: req.From, To: req.To})
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Clientes por ciudad",
		"estado", "ciudad", "num_clientes", "num_pedidos", "ratio_pedidos_cliente", "entrega_prom_dias",
	).WithAxes("ciudad", "num_clientes")

	for _, s := range summaries {
		table.Append(
			s.State,
			s.City,
			s.NumClientes,
			s.NumPedidos,
			pipeline.Cell(s.RatioPedidosCliente),
			pipeline.Cell(s.EntregaPromDias),
		)
	}
	return table, nil
}
