package domain

import "github.com/shopspring/decimal"

//go:generate go run github.com/pinnacle/erp/cmd/generator -out ../repository/product_gen.go Product

// Product is a sellable apparel item. Prices are stored with two decimal places.
type Product struct {
	ID          int64           `col:"id,readonly" json:"id"`
	Code        string          `col:"codigo_produto" json:"code"`
	Color       Color           `col:"cor" json:"color"`
	Description string          `col:"descricao_produto" json:"description"`
	Size        Size            `col:"tamanho" json:"size"`
	Fit         Fit             `col:"modelagem" json:"fit"`
	Gender      Gender          `col:"genero" json:"gender"`
	Group       Group           `col:"grupo" json:"group"`
	Subgroup    Subgroup        `col:"subgrupo" json:"subgroup"`
	CostPrice   decimal.Decimal `col:"preco_custo" json:"cost_price"`
	SalePrice   decimal.Decimal `col:"preco_venda" json:"sale_price"`
	Stock       int             `col:"estoque" json:"stock"`
}
