package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	Geo    GeoConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port int
}

// DataConfig names the input files of the snapshot. Every file is a
// delimited table with a header row, read once at startup.
type DataConfig struct {
	Dir                 string
	Orders              string
	Customers           string
	OrderItems          string
	Reviews             string
	Sellers             string
	Products            string
	CategoryTranslation string
}

type GeoConfig struct {
	BoundariesURL string
	Timeout       time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DATA_DIR", "Olist_Data")
	viper.SetDefault("DATA_ORDERS", "olist_orders_dataset.csv")
	viper.SetDefault("DATA_CUSTOMERS", "olist_customers_dataset.csv")
	viper.SetDefault("DATA_ORDER_ITEMS", "olist_order_items_dataset.csv")
	viper.SetDefault("DATA_REVIEWS", "olist_order_reviews_dataset.csv")
	viper.SetDefault("DATA_SELLERS", "olist_sellers_dataset.csv")
	viper.SetDefault("DATA_PRODUCTS", "olist_products_dataset.csv")
	viper.SetDefault("DATA_CATEGORY_TRANSLATION", "product_category_name_translation.csv")
	viper.SetDefault("GEO_BOUNDARIES_URL", "https://raw.githubusercontent.com/codeforamerica/click_that_hood/master/public/data/brazil-states.geojson")
	viper.SetDefault("GEO_TIMEOUT", "10s")
	viper.SetDefault("LOG_LEVEL", "info")

	geoTimeout, err := time.ParseDuration(viper.GetString("GEO_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Data: DataConfig{
			Dir:                 viper.GetString("DATA_DIR"),
			Orders:              viper.GetString("DATA_ORDERS"),
			Customers:           viper.GetString("DATA_CUSTOMERS"),
			OrderItems:          viper.GetString("DATA_ORDER_ITEMS"),
			Reviews:             viper.GetString("DATA_REVIEWS"),
			Sellers:             viper.GetString("DATA_SELLERS"),
			Products:            viper.GetString("DATA_PRODUCTS"),
			CategoryTranslation: viper.GetString("DATA_CATEGORY_TRANSLATION"),
		},
		Geo: GeoConfig{
			BoundariesURL: viper.GetString("GEO_BOUNDARIES_URL"),
			Timeout:       geoTimeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
