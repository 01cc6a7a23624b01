package repository

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/storage"
)

// InitializeSampleData seeds the catalog and initializes the empty
// collections on first run. Existing keys are left untouched, so reseeding
// on every start is safe.
func InitializeSampleData(ctx context.Context, store storage.Store) error {
	var services []entities.Service
	found, err := store.Get(ctx, storage.KeyServices, &services)
	if err != nil {
		return err
	}
	if !found {
		if err := store.Set(ctx, storage.KeyServices, sampleServices()); err != nil {
			return err
		}
	}

	var categories []entities.Category
	found, err = store.Get(ctx, storage.KeyCategories, &categories)
	if err != nil {
		return err
	}
	if !found {
		if err := store.Set(ctx, storage.KeyCategories, sampleCategories()); err != nil {
			return err
		}
	}

	for _, key := range []string{storage.KeyOrders, storage.KeyUsers, storage.KeyPayments} {
		var raw []map[string]any
		found, err := store.Get(ctx, key, &raw)
		if err != nil {
			return err
		}
		if !found {
			if err := store.Set(ctx, key, []map[string]any{}); err != nil {
				return err
			}
		}
	}
	return nil
}

func sampleServices() []entities.Service {
	return []entities.Service{
		{
			ID:          1,
			Title:       "قهوه تخصصی",
			Description: "قهوه با کیفیت بالا از دانه‌های انتخابی",
			Price:       25000,
			CategoryID:  1,
			Options: []entities.ServiceOption{
				{ID: 1, Name: "سایز", Values: []string{"کوچک", "متوسط", "بزرگ"}, Prices: []int64{0, 5000, 10000}},
				{ID: 2, Name: "شیر", Values: []string{"بدون شیر", "نیمه چرب", "کامل"}, Prices: []int64{0, 3000, 5000}},
			},
		},
		{
			ID:          2,
			Title:       "چای انواع",
			Description: "چای‌های مختلف با کیفیت",
			Price:       15000,
			CategoryID:  2,
			Options: []entities.ServiceOption{
				{ID: 1, Name: "نوع چای", Values: []string{"سبز", "سیاه", "نوشابه‌ای"}, Prices: []int64{0, 2000, 3000}},
			},
		},
	}
}

func sampleCategories() []entities.Category {
	return []entities.Category{
		{ID: 1, Name: "قهوه"},
		{ID: 2, Name: "چای"},
		{ID: 3, Name: "نوشیدنی‌های سرد"},
		{ID: 4, Name: "دسرها"},
	}
}
