package domain

import "sort"

// Query - параметры фильтрации, выбранные пользователем
type Query struct {
	Hour         int
	MainCategory string
	// HeatmapEnabled влияет только на построение слоя тепловой карты, не на фильтрацию
	HeatmapEnabled bool
}

func (q Query) matchesCategory(p Place) bool {
	return q.MainCategory == AllCategories || p.MainCategory == q.MainCategory
}

// Filter возвращает места, открытые в q.Hour, и места, закрывающиеся ровно в q.Hour.
// Оба результата сохраняют порядок исходного слайса; places не изменяется.
// closingSoon не зависит от IsOpen: место с часами 18-2 при hour=2 попадает только в closingSoon.
func Filter(places []Place, q Query) (active, closingSoon []Place) {
	active = make([]Place, 0)
	closingSoon = make([]Place, 0)

	for _, p := range places {
		if !q.matchesCategory(p) {
			continue
		}
		if p.IsOpenAt(q.Hour) {
			active = append(active, p)
		}
		if p.CloseHour == q.Hour {
			closingSoon = append(closingSoon, p)
		}
	}

	return active, closingSoon
}

// SubCategoryCount - количество мест в подкатегории
type SubCategoryCount struct {
	SubCategory string `json:"sub_category"`
	Count       int    `json:"count"`
}

// TopSubCategories counts places per sub-category and returns at most limit entries,
// highest count first. Ties keep the order in which the sub-category first appeared.
func TopSubCategories(places []Place, limit int) []SubCategoryCount {
	index := make(map[string]int)
	counts := make([]SubCategoryCount, 0)
	for _, p := range places {
		if i, ok := index[p.SubCategory]; ok {
			counts[i].Count++
			continue
		}
		index[p.SubCategory] = len(counts)
		counts = append(counts, SubCategoryCount{SubCategory: p.SubCategory, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
