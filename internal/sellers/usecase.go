package sellers

import (
	"context"

	"mirador/internal/pipeline"
)

type sellersUseCase struct {
	service Service
}

func NewUseCase(service Service) UseCase {
	return &sellersUseCase{service: service}
}

func (uc *sellersUseCase) TopSellers(ctx context.Context, req ViewRequest) (*pipeline.Table, error) {
	summaries, err := uc.service.TopSellers(ctx, req.Filter, req.Limit)
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Vendedores mejor valorados",
		"seller_id", "estado", "num_pedidos", "score_medio",
	).WithAxes("seller_id", "score_medio")

	for _, s := range summaries {
		table.Append(s.SellerID, s.State, s.NumOrders, pipeline.Cell(s.ScoreMedio))
	}
	return table, nil
}

func (uc *sellersUseCase) Revenue(ctx context.Context, req ViewRequest) (*pipeline.Table, error) {
	summaries, err := uc.service.Revenue(ctx, req.Filter, req.Limit)
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Ingresos por vendedor",
		"seller_id", "estado", "num_pedidos", "ingresos",
	).WithAxes("seller_id", "ingresos")

	for _, s := range summaries {
		table.Append(s.SellerID, s.State, s.NumOrders, s.Revenue)
	}
	return table, nil
}

func (uc *sellersUseCase) Categories(ctx context.Context, req ViewRequest) (*pipeline.Table, error) {
	summaries, err := uc.service.Categories(ctx, req.Filter, req.Limit)
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Categorías más compradas",
		"categoria", "num_compras",
	).WithAxes("categoria", "num_compras")

	for _, c := range summaries {
		table.Append(c.Category, c.NumPurchases)
	}
	return table, nil
}

func (uc *sellersUseCase) Freight(ctx context.Context, req ViewRequest) (*pipeline.Table, error) {
	summaries, err := uc.service.Freight(ctx, req.Filter, req.Limit)
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Coste medio de envío por categoría",
		"categoria", "num_compras", "coste_medio_envio",
	).WithAxes("categoria", "coste_medio_envio")

	for _, c := range summaries {
		table.Append(c.Category, c.NumPurchases, pipeline.Cell(c.AvgFreight))
	}
	return table, nil
}

func (uc *sellersUseCase) Scores(ctx context.Context, req ViewRequest) (*pipeline.Table, error) {
	counts, err := uc.service.Scores(ctx, req.Filter)
	if err != nil {
		return nil, err
	}

	table := pipeline.NewTable(
		"Distribución de calificaciones",
		"score", "num_reviews",
	).WithAxes("score", "num_reviews")

	for _, c := range counts {
		table.Append(c.Score, c.Count)
	}
	return table, nil
}

func (uc *sellersUseCase) Bounds(ctx context.Context, states []string) (pipeline.SalesBounds, error) {
	return uc.service.Bounds(ctx, states)
}
