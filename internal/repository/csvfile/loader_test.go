package csvfile

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pattaya-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleCSV = `Display Name (TH),Display Name (EN),Main Category,Sub-Category,Latitude,Longitude
บาร์,Walking Street Bar,Food & Drink,Nightlife Bar,12.9270,100.8730
,Coffee Club,Food & Drink,Cafes,12.9300,100.8800
เซเว่น,,Retail,Convenience Store,12.9350,100.8770
ไม่มีพิกัด,No Coordinates,Retail,Mall,,100.8800
Bad,Bad Latitude,Retail,Mall,north,100.8800
`

// MockObjectStorage is a mock of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_NormalizesAndDrops(t *testing.T) {
	loadedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ds, err := Parse("places.csv", []byte(sampleCSV), loadedAt)
	require.NoError(t, err)

	require.Equal(t, 3, ds.Len())
	assert.Equal(t, 2, ds.Dropped())
	assert.Equal(t, loadedAt, ds.LoadedAt())
	assert.NotEmpty(t, ds.Version())

	bar := ds.Places()[0]
	assert.Equal(t, 0, bar.Row)
	assert.Equal(t, 12.9270, bar.Latitude)
	assert.Equal(t, 100.8730, bar.Longitude)
	assert.Equal(t, "Nightlife Bar", bar.SubCategory)
	assert.Equal(t, 18, bar.OpenHour)
	assert.Equal(t, 2, bar.CloseHour)
	assert.Equal(t, "บาร์", bar.DisplayName())

	cafe := ds.Places()[1]
	assert.Equal(t, "", cafe.DisplayNameTH)
	assert.Equal(t, "Coffee Club", cafe.DisplayName())
	assert.Equal(t, 8, cafe.OpenHour)

	store := ds.Places()[2]
	assert.Equal(t, 2, store.Row)
	assert.Equal(t, 0, store.OpenHour)
	assert.Equal(t, 24, store.CloseHour)

	assert.Equal(t, []string{"Food & Drink", "Retail"}, ds.MainCategories())
}

func TestParse_LowercaseCoordinateHeaders(t *testing.T) {
	content := "latitude,longitude,Main Category,Sub-Category\n12.9,100.8,Parks,Parks\n"

	ds, err := Parse("lower.csv", []byte(content), time.Now())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 5, ds.Places()[0].OpenHour)
	assert.Equal(t, domain.NamePlaceholder, ds.Places()[0].DisplayName())
}

func TestParse_ByteOrderMark(t *testing.T) {
	content := "\ufeffLatitude,Longitude,Main Category,Sub-Category\n12.9,100.8,Retail,Mall\n"

	ds, err := Parse("bom.csv", []byte(content), time.Now())
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, 10, ds.Places()[0].OpenHour)
}

func TestParse_NumericSubCategoryStaysString(t *testing.T) {
	content := "Latitude,Longitude,Main Category,Sub-Category\n12.9,100.8,Other,12345\n12.8,100.7,Other,\n"

	ds, err := Parse("numeric.csv", []byte(content), time.Now())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "12345", ds.Places()[0].SubCategory)
	assert.Equal(t, 9, ds.Places()[0].OpenHour)
	assert.Equal(t, 21, ds.Places()[1].CloseHour)
}

func TestParse_MissingColumns(t *testing.T) {
	_, err := Parse("bad.csv", []byte("Name,Main Category,Sub-Category\nx,y,z\n"), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "longitude")
}

func TestParse_HeaderOnly(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		ds, err := Parse("x.csv", []byte("\ufefflatitude,longitude,Main Category,Sub-Category\n"), time.Now())
		require.NoError(t, err)
		assert.Equal(t, 0, ds.Len())
		assert.Equal(t, 0, ds.Dropped())
		assert.Empty(t, ds.MainCategories())
		assert.NotEmpty(t, ds.Version())
	})

	t.Run("missing columns", func(t *testing.T) {
		_, err := Parse("x.csv", []byte("latitude,Main Category\n"), time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Parse("x.csv", nil, time.Now())
		assert.Error(t, err)
	})
}

func TestParse_RowIsPositionInDataset(t *testing.T) {
	content := "Latitude,Longitude,Main Category,Sub-Category\n,100.8,Retail,Mall\n12.9,100.8,Retail,Mall\n12.8,100.7,Parks,Parks\n"

	ds, err := Parse("rows.csv", []byte(content), time.Now())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, 1, ds.Dropped())
	assert.Equal(t, 0, ds.Places()[0].Row)
	assert.Equal(t, 1, ds.Places()[1].Row)
}

func TestLoader_Load(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("local file", func(t *testing.T) {
		path := writeCSV(t, sampleCSV)
		l := NewLoader(nil, logger)

		ds, err := l.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, path, ds.Source())
		assert.Equal(t, 3, ds.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		l := NewLoader(nil, logger)

		_, err := l.Load(ctx, filepath.Join(t.TempDir(), "absent.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDataLoad))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("ragged rows", func(t *testing.T) {
		path := writeCSV(t, "Latitude,Longitude,Main Category,Sub-Category\n12.9,100.8\n")
		l := NewLoader(nil, logger)

		_, err := l.Load(ctx, path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDataLoad))
	})

	t.Run("object storage", func(t *testing.T) {
		objects := &MockObjectStorage{}
		objects.On("Open", ctx, "datasets", "pattaya/places.csv").
			Return(io.NopCloser(strings.NewReader(sampleCSV)), nil)
		l := NewLoader(objects, logger)

		ds, err := l.Load(ctx, "s3://datasets/pattaya/places.csv")
		require.NoError(t, err)
		assert.Equal(t, 3, ds.Len())
		objects.AssertExpectations(t)
	})

	t.Run("object storage not configured", func(t *testing.T) {
		l := NewLoader(nil, logger)

		_, err := l.Load(ctx, "s3://datasets/places.csv")
		assert.True(t, errors.Is(err, domain.ErrDataLoad))
	})
}

func TestSplitObjectPath(t *testing.T) {
	bucket, key, err := SplitObjectPath("s3://datasets/pattaya/places.csv")
	require.NoError(t, err)
	assert.Equal(t, "datasets", bucket)
	assert.Equal(t, "pattaya/places.csv", key)

	_, _, err = SplitObjectPath("s3://datasets")
	assert.Error(t, err)
	_, _, err = SplitObjectPath("s3:///key")
	assert.Error(t, err)
}
