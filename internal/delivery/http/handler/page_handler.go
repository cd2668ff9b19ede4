package handler

import (
	"embed"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pattaya-dashboard/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// knownTiles - URL шаблоны для именованных подложек
var knownTiles = map[string]string{
	"cartodb positron":    "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
	"cartodb dark_matter": "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
	"openstreetmap":       "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
}

// PageData - данные для шаблона страницы дашборда
type PageData struct {
	Title       string
	APIBase     string
	DefaultHour int
	Hours       []int
	CenterLat   float64
	CenterLon   float64
	Zoom        int
	TileURL     string
}

// PageHandler - хендлер для рендеринга страницы дашборда
type PageHandler struct {
	templates *template.Template
	settings  config.DashboardConfig
}

// NewPageHandler - создание нового хендлера страницы
func NewPageHandler(settings config.DashboardConfig) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		templates: tmpl,
		settings:  settings,
	}, nil
}

// RenderDashboard - рендеринг страницы дашборда
func (h *PageHandler) RenderDashboard(c *fiber.Ctx) error {
	hours := make([]int, 24)
	for i := range hours {
		hours[i] = i
	}

	data := PageData{
		Title:       "Pattaya Day/Night Dashboard",
		APIBase:     "/api/v1",
		DefaultHour: h.settings.DefaultHour,
		Hours:       hours,
		CenterLat:   h.settings.CenterLat,
		CenterLon:   h.settings.CenterLon,
		Zoom:        h.settings.Zoom,
		TileURL:     TileURL(h.settings.Tiles),
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "dashboard.html", data)
}

// TileURL возвращает URL шаблон подложки. Неизвестное имя считается готовым URL шаблоном.
func TileURL(tiles string) string {
	if url, ok := knownTiles[strings.ToLower(strings.TrimSpace(tiles))]; ok {
		return url
	}
	if strings.Contains(tiles, "{z}") {
		return tiles
	}
	return knownTiles["cartodb positron"]
}
