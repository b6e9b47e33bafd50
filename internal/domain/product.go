package domain

type Product struct {
	ProductID string
	// CategoryName is the raw source-language category code.
	CategoryName string
	// Category is the English display name resolved from the translation
	// table; falls back to CategoryName when no translation exists.
	Category string
}

func (p Product) DisplayCategory() string {
	if p.Category != "" {
		return p.Category
	}
	return p.CategoryName
}
