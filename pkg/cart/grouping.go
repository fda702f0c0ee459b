package cart

import "markethub-be/internal/entity"

// ProductResolver looks a product up by id.
type ProductResolver func(productId int) (entity.Product, bool)

type ResolvedLine struct {
	Item    entity.LineItem
	Product entity.Product
}

func (l ResolvedLine) LineTotal() float64 {
	return roundCents(l.Product.Price * float64(l.Item.Quantity))
}

type StoreGroup struct {
	StoreId int
	Lines   []ResolvedLine
}

// GroupByStore partitions lines by the store owning their product, in order of
// first appearance. Lines whose product cannot be resolved are left out.
func GroupByStore(items []entity.LineItem, resolve ProductResolver) []StoreGroup {
	groups := make([]StoreGroup, 0)
	index := make(map[int]int)

	for _, item := range items {
		product, ok := resolve(item.ProductId)
		if !ok {
			continue
		}
		i, seen := index[product.StoreId]
		if !seen {
			i = len(groups)
			index[product.StoreId] = i
			groups = append(groups, StoreGroup{StoreId: product.StoreId})
		}
		groups[i].Lines = append(groups[i].Lines, ResolvedLine{Item: item, Product: product})
	}
	return groups
}

func (g StoreGroup) Subtotal() float64 {
	total := 0.0
	for _, l := range g.Lines {
		total += l.Product.Price * float64(l.Item.Quantity)
	}
	return roundCents(total)
}
