package filter

import (
	"sort"

	"github.com/routerlogin/routerlogin/internal/models"
)

// Routers filters routers for the guides listing. The term is matched
// against the IP address, brand and model. If brand is not empty, only
// routers with exactly this brand are kept.
func Routers(routers []models.Router, term, brand string) []models.Router {
	var keep func(models.Router) bool
	if brand != "" {
		keep = func(router models.Router) bool {
			return router.Brand == brand
		}
	}
	return match(routers, term, keep, func(router models.Router) []string {
		return []string{router.IP, router.Brand, router.Model}
	})
}

// ByBrand returns the routers of the given brand, comparing
// brands case insensitively.
func ByBrand(routers []models.Router, brand string) []models.Router {
	return BrandRouters(routers, brand, "")
}

// BrandRouters filters routers of a brand page. Brands are compared
// case insensitively and the term is matched against the IP address
// and model.
func BrandRouters(routers []models.Router, brand, term string) []models.Router {
	keep := func(router models.Router) bool {
		return equalFold(router.Brand, brand)
	}
	return match(routers, term, keep, func(router models.Router) []string {
		return []string{router.IP, router.Model}
	})
}

// UniqueIPs returns the IP addresses of the routers without duplicates,
// in order of first occurrence.
func UniqueIPs(routers []models.Router) (ips []string) {
	seen := make(map[string]struct{}, len(routers))
	ips = make([]string, 0, len(routers))
	for _, router := range routers {
		if _, ok := seen[router.IP]; ok {
			continue
		}
		seen[router.IP] = struct{}{}
		ips = append(ips, router.IP)
	}
	return ips
}

// Brands returns the sorted unique brands of the routers.
func Brands(routers []models.Router) (brands []string) {
	seen := make(map[string]struct{}, len(routers))
	brands = make([]string, 0, len(routers))
	for _, router := range routers {
		if _, ok := seen[router.Brand]; ok {
			continue
		}
		seen[router.Brand] = struct{}{}
		brands = append(brands, router.Brand)
	}
	sort.Strings(brands)
	return brands
}

// FindRouter returns the first router whose key, that is its IP
// address with dots replaced by hyphens, equals the given key.
func FindRouter(routers []models.Router, key string) (router models.Router, ok bool) {
	for _, router := range routers {
		if router.Key() == key {
			return router, true
		}
	}
	return router, false
}

// Popular returns the first n routers.
func Popular(routers []models.Router, n int) []models.Router {
	switch {
	case n < 0:
		n = 0
	case n > len(routers):
		n = len(routers)
	}
	popular := make([]models.Router, n)
	copy(popular, routers)
	return popular
}
