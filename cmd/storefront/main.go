package main

import (
	"context"
	"log"
	"time"

	"storefront-client/internal/api"
	"storefront-client/internal/api/memory"
	"storefront-client/internal/api/wordpress"
	"storefront-client/internal/cache"
	"storefront-client/internal/cart"
	"storefront-client/internal/catalog"
	"storefront-client/internal/config"
	"storefront-client/internal/logger"
	"storefront-client/internal/search"
	"storefront-client/internal/storage"
	"storefront-client/internal/wishlist"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	store, err := storage.NewFileStore(cfg.StorePath)
	if err != nil {
		log.Fatalf("open device store: %v", err)
	}

	var client api.Client
	switch cfg.APIBackend {
	case "memory":
		client = memory.New(demoSeed())
	default:
		client = wordpress.New(wordpress.Config{
			BaseURL:        cfg.BaseURL,
			ConsumerKey:    cfg.ConsumerKey,
			ConsumerSecret: cfg.ConsumerSecret,
			Timeout:        cfg.HTTPTimeout,
		}, store)
	}

	cartSvc := cart.NewService(client)
	wishlistSvc := wishlist.NewService(client)
	recent := search.NewRecent(store)

	cartSvc.OnChange(func(count int) {
		logger.L().Info("cart badge", zap.Int("count", count))
	})
	wishlistSvc.OnChange(func(count int) {
		logger.L().Info("wishlist badge", zap.Int("count", count))
	})

	productCache := cache.NewLoader[[]catalog.RawProduct](cfg.CacheTTL)
	categoryCache := cache.NewLoader[[]catalog.RawCategory](cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := api.ProductQuery{Page: 1, PerPage: 10}
	products, err := productCache.Get(ctx, cache.Key("products", query), func(ctx context.Context) ([]catalog.RawProduct, error) {
		return client.GetProducts(ctx, query)
	})
	if err != nil {
		logger.L().Error("fetch products", zap.Error(err))
	} else {
		logger.L().Info("fetched products", zap.Int("count", len(products)))
	}

	categories, err := categoryCache.Get(ctx, cache.Key("categories", nil), func(ctx context.Context) ([]catalog.RawCategory, error) {
		return client.GetCategories(ctx, api.CategoryQuery{})
	})
	if err != nil {
		logger.L().Error("fetch categories", zap.Error(err))
	} else {
		logger.L().Info("fetched categories", zap.Int("count", len(categories)))
	}

	if err := recent.Record(ctx, "hoodie"); err != nil {
		logger.L().Warn("record search", zap.Error(err))
	}

	contents, err := cartSvc.Contents(ctx)
	if err != nil {
		logger.L().Error("load cart", zap.Error(err))
		return
	}
	logger.L().Info("cart restored",
		zap.Int("items", len(contents.Items)),
		zap.Float64("total", contents.CartTotal),
	)
}

func demoSeed() memory.Seed {
	return memory.Seed{
		Products: []catalog.RawProduct{
			{ID: 1, Name: "Classic Hoodie", Price: catalog.FlexString("29.99"), RegularPrice: catalog.FlexString("39.99")},
			{ID: 2, Name: "Canvas Tote", Price: catalog.FlexString("12.50")},
		},
		Categories: []catalog.RawCategory{
			{ID: 10, Name: "Apparel"},
			{ID: 11, Name: "Accessories"},
		},
		PaymentMethods: []api.PaymentMethod{
			{ID: "cod", Title: "Cash on delivery", Enabled: true},
		},
		ShippingMethods: []api.ShippingMethod{
			{ID: "flat_rate", Title: "Flat rate"},
		},
	}
}
