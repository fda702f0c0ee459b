package entity

type Product struct {
	Id             int
	Name           string
	Price          float64
	Description    string
	Images         []string
	Category       string
	Stock          int
	Rating         float64
	Specifications map[string]string
	StoreId        int
}

// Clone returns a copy that shares no slices or maps with p.
func (p Product) Clone() Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	if p.Specifications != nil {
		out.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			out.Specifications[k] = v
		}
	}
	return out
}

// ProductFilter narrows catalog listings. Zero values mean "no constraint".
type ProductFilter struct {
	StoreId   *int
	Category  string
	Query     string
	MinRating float64
	Limit     int
	Offset    int
}
