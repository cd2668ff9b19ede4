package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pattaya-dashboard/internal/domain"
)

// MockDatasetStore is a mock of DatasetStore
type MockDatasetStore struct {
	mock.Mock
}

func (m *MockDatasetStore) Get(ctx context.Context, path string) (*domain.Dataset, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func (m *MockDatasetStore) Reload(ctx context.Context, path string) (*domain.Dataset, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func (m *MockDatasetStore) Invalidate(path string) {
	m.Called(path)
}

func (m *MockDatasetStore) Clear() {
	m.Called()
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

const testDataPath = "places.csv"

// testDataset builds a small dataset covering every hours rule
func testDataset() *domain.Dataset {
	rows := []domain.PlaceAttributes{
		{Latitude: 12.93, Longitude: 100.88, MainCategory: "Food", SubCategory: "Cafes & Coffee", DisplayNameTH: "คาเฟ่สยาม", DisplayNameEN: "Cafe Siam"},
		{Latitude: 12.92, Longitude: 100.87, MainCategory: "Nightlife", SubCategory: "Nightlife Bars", DisplayNameEN: "Walking Street Bar"},
		{Latitude: 12.94, Longitude: 100.89, MainCategory: "Retail", SubCategory: "Convenience Store", DisplayNameEN: "7-Eleven"},
		{Latitude: 12.91, Longitude: 100.86, MainCategory: "Retail", SubCategory: "Shopping Mall", DisplayNameEN: "Terminal 21"},
		{Latitude: 12.95, Longitude: 100.90, MainCategory: "Services", SubCategory: "Government Office"},
		{Latitude: 12.90, Longitude: 100.85, MainCategory: "Culture", SubCategory: "Museum"},
		{Latitude: 12.96, Longitude: 100.91, MainCategory: "Retail", SubCategory: "Shopping Mall", DisplayNameTH: "เซ็นทรัล"},
	}

	places := make([]domain.Place, 0, len(rows))
	for i, r := range rows {
		r.Row = i
		places = append(places, domain.NewPlace(r))
	}
	return domain.NewDataset(testDataPath, "v1", places, 2, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
}
