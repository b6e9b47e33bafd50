package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"mirador/internal/config"
	"mirador/internal/dataset"
	"mirador/internal/domain"
	apperrors "mirador/internal/errors"
	"mirador/internal/pipeline"
)

// table is a parsed CSV file with header-indexed access. Columns beyond
// the required set are ignored.
type table struct {
	path    string
	index   map[string]int
	records [][]string
}

// Load reads the seven snapshot files, checks each schema, parses the
// typed columns and applies the order-date imputation once. Any
// unparseable value in a typed column fails the whole load; there is no
// partial result.
func Load(cfg config.DataConfig) (dataset.Snapshot, error) {
	var snap dataset.Snapshot
	var err error

	if snap.Orders, err = loadOrders(filepath.Join(cfg.Dir, cfg.Orders)); err != nil {
		return dataset.Snapshot{}, err
	}
	if len(snap.Orders) == 0 {
		// Orders are the spine of every view; an empty file parses fine
		// but leaves nothing to serve.
		return dataset.Snapshot{}, apperrors.NewEmptyResultError(fmt.Sprintf("%s: no order rows", cfg.Orders))
	}
	if snap.Customers, err = loadCustomers(filepath.Join(cfg.Dir, cfg.Customers)); err != nil {
		return dataset.Snapshot{}, err
	}
	if snap.Items, err = loadOrderItems(filepath.Join(cfg.Dir, cfg.OrderItems)); err != nil {
		return dataset.Snapshot{}, err
	}
	if snap.Reviews, err = loadReviews(filepath.Join(cfg.Dir, cfg.Reviews)); err != nil {
		return dataset.Snapshot{}, err
	}
	if snap.Sellers, err = loadSellers(filepath.Join(cfg.Dir, cfg.Sellers)); err != nil {
		return dataset.Snapshot{}, err
	}

	translations, err := loadTranslations(filepath.Join(cfg.Dir, cfg.CategoryTranslation))
	if err != nil {
		return dataset.Snapshot{}, err
	}
	if snap.Products, err = loadProducts(filepath.Join(cfg.Dir, cfg.Products), translations); err != nil {
		return dataset.Snapshot{}, err
	}

	snap.Orders = pipeline.ImputeOrderDates(snap.Orders)
	return snap, nil
}

func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	index := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		index[pipeline.CoerceString(col)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, col)
		}
	}

	return &table{path: path, index: index, records: records[1:]}, nil
}

func (t *table) get(row []string, col string) string {
	i := t.index[col]
	if i >= len(row) {
		return ""
	}
	return pipeline.CoerceString(row[i])
}

func loadOrders(path string) ([]domain.Order, error) {
	t, err := readTable(path,
		"order_id", "customer_id", "order_status",
		"order_purchase_timestamp", "order_approved_at",
		"order_delivered_carrier_date", "order_delivered_customer_date",
		"order_estimated_delivery_date",
	)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(t.records))
	for n, row := range t.records {
		o := domain.Order{
			OrderID:    t.get(row, "order_id"),
			CustomerID: t.get(row, "customer_id"),
			Status:     t.get(row, "order_status"),
		}
		if o.PurchaseTimestamp, err = pipeline.ParseTimestamp(t.get(row, "order_purchase_timestamp")); err != nil {
			return nil, rowErr(path, n, "order_purchase_timestamp", err)
		}
		if o.ApprovedAt, err = pipeline.ParseNullableTimestamp(t.get(row, "order_approved_at")); err != nil {
			return nil, rowErr(path, n, "order_approved_at", err)
		}
		if o.DeliveredCarrierDate, err = pipeline.ParseNullableTimestamp(t.get(row, "order_delivered_carrier_date")); err != nil {
			return nil, rowErr(path, n, "order_delivered_carrier_date", err)
		}
		if o.DeliveredCustomerDate, err = pipeline.ParseNullableTimestamp(t.get(row, "order_delivered_customer_date")); err != nil {
			return nil, rowErr(path, n, "order_delivered_customer_date", err)
		}
		if o.EstimatedDeliveryDate, err = pipeline.ParseTimestamp(t.get(row, "order_estimated_delivery_date")); err != nil {
			return nil, rowErr(path, n, "order_estimated_delivery_date", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func loadCustomers(path string) ([]domain.Customer, error) {
	t, err := readTable(path, "customer_id", "customer_unique_id", "customer_city", "customer_state")
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(t.records))
	for _, row := range t.records {
		customers = append(customers, domain.Customer{
			CustomerID: t.get(row, "customer_id"),
			UniqueID:   t.get(row, "customer_unique_id"),
			City:       t.get(row, "customer_city"),
			State:      t.get(row, "customer_state"),
		})
	}
	return customers, nil
}

func loadOrderItems(path string) ([]domain.OrderItem, error) {
	t, err := readTable(path, "order_id", "product_id", "seller_id", "price", "freight_value")
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(t.records))
	for n, row := range t.records {
		item := domain.OrderItem{
			OrderID:   t.get(row, "order_id"),
			ProductID: t.get(row, "product_id"),
			SellerID:  t.get(row, "seller_id"),
		}
		if item.Price, err = parseFloat(t.get(row, "price")); err != nil {
			return nil, rowErr(path, n, "price", err)
		}
		if item.FreightValue, err = parseFloat(t.get(row, "freight_value")); err != nil {
			return nil, rowErr(path, n, "freight_value", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func loadReviews(path string) ([]domain.Review, error) {
	t, err := readTable(path, "review_id", "order_id", "review_score")
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(t.records))
	for n, row := range t.records {
		r := domain.Review{
			ReviewID: t.get(row, "review_id"),
			OrderID:  t.get(row, "order_id"),
		}
		if r.Score, err = parseScore(t.get(row, "review_score")); err != nil {
			return nil, rowErr(path, n, "review_score", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

func loadSellers(path string) ([]domain.Seller, error) {
	t, err := readTable(path, "seller_id", "seller_city", "seller_state")
	if err != nil {
		return nil, err
	}

	sellers := make([]domain.Seller, 0, len(t.records))
	for _, row := range t.records {
		sellers = append(sellers, domain.Seller{
			SellerID: t.get(row, "seller_id"),
			City:     t.get(row, "seller_city"),
			State:    t.get(row, "seller_state"),
		})
	}
	return sellers, nil
}

func loadTranslations(path string) (map[string]string, error) {
	t, err := readTable(path, "product_category_name", "product_category_name_english")
	if err != nil {
		return nil, err
	}

	translations := make(map[string]string, len(t.records))
	for _, row := range t.records {
		translations[t.get(row, "product_category_name")] = t.get(row, "product_category_name_english")
	}
	return translations, nil
}

// loadProducts resolves the English category display name through the
// translation table with left-join semantics: untranslated categories keep
// the raw name.
func loadProducts(path string, translations map[string]string) ([]domain.Product, error) {
	t, err := readTable(path, "product_id", "product_category_name")
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(t.records))
	for _, row := range t.records {
		p := domain.Product{
			ProductID:    t.get(row, "product_id"),
			CategoryName: t.get(row, "product_category_name"),
		}
		p.Category = translations[p.CategoryName]
		products = append(products, p)
	}
	return products, nil
}

func rowErr(path string, row int, col string, err error) error {
	return fmt.Errorf("%s row %d column %s: %w", path, row+2, col, err)
}
