package domain

import (
	"fmt"
	"strings"
)

// Hours - пара часов открытия и закрытия, значения в диапазоне [0,24]
type Hours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// HoursRule сопоставляет набор подстрок подкатегории с часами работы
type HoursRule struct {
	Keywords []string
	Hours    Hours
}

// DefaultHours применяется, когда ни одно правило не совпало
var DefaultHours = Hours{Open: 9, Close: 21}

// Order matters: the first rule with a matching keyword wins.
var hoursRules = []HoursRule{
	{Keywords: []string{"nightlife", "bars"}, Hours: Hours{Open: 18, Close: 2}},
	{Keywords: []string{"cafes", "coffee"}, Hours: Hours{Open: 8, Close: 20}},
	{Keywords: []string{"fast food", "convenience"}, Hours: Hours{Open: 0, Close: 24}},
	{Keywords: []string{"shopping", "mall"}, Hours: Hours{Open: 10, Close: 22}},
	{Keywords: []string{"office", "gov"}, Hours: Hours{Open: 8, Close: 17}},
	{Keywords: []string{"parks", "beach"}, Hours: Hours{Open: 5, Close: 20}},
}

// HoursRules возвращает копию таблицы правил в порядке применения
func HoursRules() []HoursRule {
	out := make([]HoursRule, len(hoursRules))
	copy(out, hoursRules)
	return out
}

// ResolveHours возвращает часы работы для подкатегории любого типа.
// Значение приводится к строке через fmt.Sprint, поэтому nil попадает в правило по умолчанию.
func ResolveHours(subCategory any) (open, close int) {
	if s, ok := subCategory.(string); ok {
		return ResolveHoursString(s)
	}
	return ResolveHoursString(fmt.Sprint(subCategory))
}

// ResolveHoursString - типизированный вариант ResolveHours
func ResolveHoursString(subCategory string) (open, close int) {
	h := resolve(strings.ToLower(subCategory))
	return h.Open, h.Close
}

func resolve(lowered string) Hours {
	for _, rule := range hoursRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return rule.Hours
			}
		}
	}
	return DefaultHours
}
