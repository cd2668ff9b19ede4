package csvfile

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Колонки входного CSV
const (
	ColumnLatitude      = "latitude"
	ColumnLongitude     = "longitude"
	ColumnMainCategory  = "Main Category"
	ColumnSubCategory   = "Sub-Category"
	ColumnDisplayNameTH = "Display Name (TH)"
	ColumnDisplayNameEN = "Display Name (EN)"
)

// s3Scheme - префикс пути для загрузки из объектного хранилища
const s3Scheme = "s3://"

// Same markers pandas treats as missing by default.
var missingValues = []string{"", "#N/A", "#NA", "-NaN", "-nan", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null"}

type loader struct {
	objects repository.ObjectStorage
	logger  *zap.Logger
	now     func() time.Time
}

// NewLoader создает загрузчик CSV. objects может быть nil, тогда пути s3:// не поддерживаются.
func NewLoader(objects repository.ObjectStorage, logger *zap.Logger) repository.DatasetLoader {
	return &loader{
		objects: objects,
		logger:  logger,
		now:     time.Now,
	}
}

func (l *loader) Load(ctx context.Context, path string) (*domain.Dataset, error) {
	raw, err := l.read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrDataLoad, path, err)
	}

	ds, err := Parse(path, raw, l.now())
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrDataLoad, path, err)
	}

	l.logger.Info("Dataset loaded",
		zap.String("path", path),
		zap.Int("places", ds.Len()),
		zap.Int("dropped_rows", ds.Dropped()),
		zap.String("version", ds.Version()),
	)
	if ds.Dropped() > 0 {
		l.logger.Debug("Rows without coordinates dropped", zap.Int("count", ds.Dropped()))
	}

	return ds, nil
}

func (l *loader) read(ctx context.Context, path string) ([]byte, error) {
	if !strings.HasPrefix(path, s3Scheme) {
		return os.ReadFile(path)
	}

	if l.objects == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	bucket, key, err := SplitObjectPath(path)
	if err != nil {
		return nil, err
	}

	obj, err := l.objects.Open(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

// SplitObjectPath разбирает путь вида s3://bucket/key
func SplitObjectPath(path string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(path, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object path %q, expected s3://bucket/key", path)
	}
	return bucket, key, nil
}

// Parse разбирает содержимое CSV в датасет. Строки без корректных координат отбрасываются.
func Parse(source string, raw []byte, loadedAt time.Time) (*domain.Dataset, error) {
	version := fmt.Sprintf("%x", md5.Sum(raw))

	df := dataframe.ReadCSV(stripBOM(raw),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		// gota refuses a frame without records, a header-only file is still a valid empty dataset
		header, ok := headerOnly(raw)
		if !ok {
			return nil, df.Err
		}
		if _, err := resolveColumns(header); err != nil {
			return nil, err
		}
		return domain.NewDataset(source, version, nil, 0, loadedAt), nil
	}

	cols, err := resolveColumns(df.Names())
	if err != nil {
		return nil, err
	}

	lat := df.Col(cols.latitude)
	lon := df.Col(cols.longitude)
	mainCategory := df.Col(cols.mainCategory)
	sub := df.Col(cols.subCategory)
	nameTH := optionalCol(df, cols.displayNameTH)
	nameEN := optionalCol(df, cols.displayNameEN)

	places := make([]domain.Place, 0, df.Nrow())
	dropped := 0
	for i := 0; i < df.Nrow(); i++ {
		latitude, okLat := parseCoordinate(lat.Elem(i))
		longitude, okLon := parseCoordinate(lon.Elem(i))
		if !okLat || !okLon {
			dropped++
			continue
		}

		places = append(places, domain.NewPlace(domain.PlaceAttributes{
			Row:           len(places),
			Latitude:      latitude,
			Longitude:     longitude,
			MainCategory:  cellString(mainCategory.Elem(i)),
			SubCategory:   cellString(sub.Elem(i)),
			DisplayNameTH: optionalCell(nameTH, i),
			DisplayNameEN: optionalCell(nameEN, i),
		}))
	}

	return domain.NewDataset(source, version, places, dropped, loadedAt), nil
}

// stripBOM drops a UTF-8 BOM that spreadsheet exports tend to prepend.
func stripBOM(raw []byte) io.Reader {
	return transform.NewReader(bytes.NewReader(raw), unicode.BOMOverride(transform.Nop))
}

// headerOnly returns the header when raw holds exactly one CSV record.
func headerOnly(raw []byte) ([]string, bool) {
	records, err := csv.NewReader(stripBOM(raw)).ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	return records[0], true
}

type columns struct {
	latitude      string
	longitude     string
	mainCategory  string
	subCategory   string
	displayNameTH string
	displayNameEN string
}

func resolveColumns(names []string) (columns, error) {
	var cols columns
	var missing []string

	require := func(dst *string, want string) {
		if name, ok := findColumn(names, want); ok {
			*dst = name
			return
		}
		missing = append(missing, want)
	}

	require(&cols.latitude, ColumnLatitude)
	require(&cols.longitude, ColumnLongitude)
	require(&cols.mainCategory, ColumnMainCategory)
	require(&cols.subCategory, ColumnSubCategory)

	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	cols.displayNameTH, _ = findColumn(names, ColumnDisplayNameTH)
	cols.displayNameEN, _ = findColumn(names, ColumnDisplayNameEN)

	return cols, nil
}

// findColumn prefers an exact header match and falls back to a case-insensitive one.
func findColumn(names []string, want string) (string, bool) {
	for _, n := range names {
		if strings.TrimSpace(n) == want {
			return n, true
		}
	}
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), want) {
			return n, true
		}
	}
	return "", false
}

func optionalCol(df dataframe.DataFrame, name string) *series.Series {
	if name == "" {
		return nil
	}
	col := df.Col(name)
	return &col
}

func optionalCell(col *series.Series, i int) string {
	if col == nil {
		return ""
	}
	return cellString(col.Elem(i))
}

func cellString(e series.Element) string {
	if e.IsNA() {
		return ""
	}
	return strings.TrimSpace(e.String())
}

func parseCoordinate(e series.Element) (float64, bool) {
	if e.IsNA() {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(e.String()), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
