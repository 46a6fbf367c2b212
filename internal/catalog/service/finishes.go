package service

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"mostruario-service/internal/catalog/model"
)

// FallbackCategory groups finish rows that carry no explicit category.
const FallbackCategory = "OTHER"

// DateUnavailable is reported when no surviving row resolves a status date.
const DateUnavailable = "Data não disponível"

// Display classification of free-text status values.
const (
	ColorRed     = "red"
	ColorAmber   = "amber"
	ColorGreen   = "green"
	ColorNeutral = "neutral"
)

// StatusColor folds the status text and matches whole words against the
// fixed vocabulary, so "ativo no fornecedor" classifies green while
// "inativo" stays neutral. Anything unrecognized, including blank, is
// neutral.
func StatusColor(status string) string {
	words := strings.FieldsFunc(Fold(status), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	has := func(want string) bool {
		for _, w := range words {
			if w == want {
				return true
			}
		}
		return false
	}
	switch {
	case has("indisponivel"):
		return ColorRed
	case has("suspenso"):
		return ColorAmber
	case has("ativo"):
		return ColorGreen
	}
	return ColorNeutral
}

// ResolveFinishes joins the product's finish rows by canonical supplier key,
// applies the optional search term, classifies statuses, computes the latest
// status date and groups by category. Pure: the catalog is never touched,
// the view is owned by the caller.
func ResolveFinishes(c *model.Catalog, p model.Product, term string) model.FinishView {
	needle := Fold(strings.TrimSpace(term))

	view := model.FinishView{}
	groupIdx := make(map[string]int)
	seenStatus := make(map[string]bool)
	seenName := make(map[string]bool)
	var last time.Time
	hasLast := false

	for _, f := range c.Finishes {
		if f.SupplierKey != p.SupplierKey {
			continue
		}
		if needle != "" && !matchesTerm(f, needle) {
			continue
		}

		cat := f.Category
		if cat == "" {
			cat = FallbackCategory
		}
		entry := model.FinishEntry{
			FinishName:  f.FinishName,
			Category:    cat,
			Composition: f.Composition,
			Status:      f.Status,
			StatusDate:  FormatDate(f.StatusDate, f.HasStatusDate),
			StatusColor: StatusColor(f.Status),
			Restriction: f.Restriction,
			Info:        f.Info,
			Image:       f.Image,
		}

		i, ok := groupIdx[cat]
		if !ok {
			i = len(view.Groups)
			groupIdx[cat] = i
			view.Groups = append(view.Groups, model.FinishGroup{Category: cat})
		}
		view.Groups[i].Entries = append(view.Groups[i].Entries, entry)

		if f.HasStatusDate && (!hasLast || f.StatusDate.After(last)) {
			last = f.StatusDate
			hasLast = true
		}
		if f.Status != "" && !seenStatus[f.Status] {
			seenStatus[f.Status] = true
			view.StatusesSeen = append(view.StatusesSeen, f.Status)
		}
		if f.FinishName != "" && !seenName[f.FinishName] {
			seenName[f.FinishName] = true
			view.FinishNames = append(view.FinishNames, f.FinishName)
		}
	}

	sort.Strings(view.FinishNames)
	if hasLast {
		view.LastUpdated = FormatDate(last, true)
	} else {
		view.LastUpdated = DateUnavailable
	}
	return view
}

// matchesTerm keeps a row when the folded term is a substring of any folded
// searchable field; absent fields never match a non-empty term.
func matchesTerm(f model.FinishRow, needle string) bool {
	for _, v := range [...]string{f.FinishName, f.Category, f.Composition, f.Restriction, f.Info} {
		if v == "" {
			continue
		}
		if strings.Contains(Fold(v), needle) {
			return true
		}
	}
	return false
}
