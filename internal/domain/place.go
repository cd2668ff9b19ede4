package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// AllCategories - значение фильтра, отключающее ограничение по основной категории
const AllCategories = "All"

// NamePlaceholder - имя места, у которого нет ни тайского, ни английского названия
const NamePlaceholder = "N/A"

// ErrDataLoad возвращается, когда файл датасета отсутствует или не может быть разобран
var ErrDataLoad = errors.New("data load failed")

// PlaceAttributes - исходные атрибуты строки датасета до вычисления часов работы
type PlaceAttributes struct {
	Row           int
	Latitude      float64
	Longitude     float64
	MainCategory  string
	SubCategory   string
	DisplayNameTH string
	DisplayNameEN string
}

// Place представляет точку интереса с вычисленными часами работы.
// OpenHour и CloseHour вычисляются один раз в NewPlace и больше не пересчитываются.
type Place struct {
	Row           int     `json:"row"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	MainCategory  string  `json:"main_category"`
	SubCategory   string  `json:"sub_category"`
	DisplayNameTH string  `json:"display_name_th,omitempty"`
	DisplayNameEN string  `json:"display_name_en,omitempty"`
	OpenHour      int     `json:"open_hour"`
	CloseHour     int     `json:"close_hour"`
}

// NewPlace создает Place и прикрепляет к нему часы работы по подкатегории
func NewPlace(attrs PlaceAttributes) Place {
	openHour, closeHour := ResolveHoursString(attrs.SubCategory)
	return Place{
		Row:           attrs.Row,
		Latitude:      attrs.Latitude,
		Longitude:     attrs.Longitude,
		MainCategory:  attrs.MainCategory,
		SubCategory:   attrs.SubCategory,
		DisplayNameTH: attrs.DisplayNameTH,
		DisplayNameEN: attrs.DisplayNameEN,
		OpenHour:      openHour,
		CloseHour:     closeHour,
	}
}

// DisplayName returns the Thai name, falling back to English and then to NamePlaceholder.
func (p Place) DisplayName() string {
	if name := strings.TrimSpace(p.DisplayNameTH); name != "" {
		return p.DisplayNameTH
	}
	if name := strings.TrimSpace(p.DisplayNameEN); name != "" {
		return p.DisplayNameEN
	}
	return NamePlaceholder
}

// IsOpenAt reports whether the place is open during the given hour.
func (p Place) IsOpenAt(hour int) bool {
	return IsOpen(p.OpenHour, p.CloseHour, hour)
}

// Dataset - упорядоченный набор мест, неизменяемый после загрузки
type Dataset struct {
	source         string
	version        string
	loadedAt       time.Time
	dropped        int
	places         []Place
	mainCategories []string
}

// NewDataset создает датасет. Слайс places переходит во владение датасета.
func NewDataset(source, version string, places []Place, dropped int, loadedAt time.Time) *Dataset {
	if places == nil {
		places = []Place{}
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range places {
		if _, ok := seen[p.MainCategory]; ok {
			continue
		}
		seen[p.MainCategory] = struct{}{}
		categories = append(categories, p.MainCategory)
	}
	sort.Strings(categories)

	return &Dataset{
		source:         source,
		version:        version,
		loadedAt:       loadedAt,
		dropped:        dropped,
		places:         places,
		mainCategories: categories,
	}
}

// Places returns the places in source order. The slice is shared and must not be modified.
func (d *Dataset) Places() []Place { return d.places }

// Len returns the number of places.
func (d *Dataset) Len() int { return len(d.places) }

// MainCategories returns distinct main categories sorted ascending.
func (d *Dataset) MainCategories() []string {
	out := make([]string, len(d.mainCategories))
	copy(out, d.mainCategories)
	return out
}

// Source returns the path the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// Version returns a digest of the raw source bytes.
func (d *Dataset) Version() string { return d.version }

// LoadedAt returns the load time.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Dropped returns how many rows were discarded for missing coordinates.
func (d *Dataset) Dropped() int { return d.dropped }
