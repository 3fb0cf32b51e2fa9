package repository

import (
	"github.com/shopspring/decimal"

	"github.com/pinnacle/erp/domain"
)

// Validate applies the record checks to the fields present in the change set.
func (c ProductChangeSet) Validate(v domain.Validator) error {
	if c.Code != nil {
		if err := domain.RequireText("codigo_produto", *c.Code); err != nil {
			return err
		}
	}
	if c.Description != nil {
		if err := domain.RequireText("descricao_produto", *c.Description); err != nil {
			return err
		}
	}
	if c.CostPrice != nil {
		if err := domain.RequireNonNegative("preco_custo", *c.CostPrice); err != nil {
			return err
		}
	}
	if c.SalePrice != nil {
		if err := domain.RequireNonNegative("preco_venda", *c.SalePrice); err != nil {
			return err
		}
	}
	if c.Stock != nil {
		if err := domain.RequireStock(*c.Stock); err != nil {
			return err
		}
	}
	if !v.StrictEnums {
		return nil
	}
	// Fill unset options with valid values so only the changed ones are checked.
	p := domain.Product{
		Code:        "-",
		Description: "-",
		Color:       domain.ColorPreta,
		Size:        domain.SizeM,
		Fit:         domain.FitRegular,
		Gender:      domain.GenderUnissex,
		Group:       domain.GroupTShirtMC,
		Subgroup:    domain.SubgroupRegular,
	}
	if c.Color != nil {
		p.Color = *c.Color
	}
	if c.Size != nil {
		p.Size = *c.Size
	}
	if c.Fit != nil {
		p.Fit = *c.Fit
	}
	if c.Gender != nil {
		p.Gender = *c.Gender
	}
	if c.Group != nil {
		p.Group = *c.Group
	}
	if c.Subgroup != nil {
		p.Subgroup = *c.Subgroup
	}
	return v.Product(p)
}

// Validate applies the record checks to the fields present in the change set.
func (c ClientChangeSet) Validate(v domain.Validator) error {
	if c.Name != nil {
		if err := domain.RequireText("nome", *c.Name); err != nil {
			return err
		}
	}
	if c.CPF != nil {
		if err := domain.RequireText("cpf", *c.CPF); err != nil {
			return err
		}
	}
	if c.BirthDate != nil {
		if err := c.BirthDate.Validate(); err != nil {
			return err
		}
	}
	if c.Sex != nil {
		return v.Client(domain.Client{Name: "-", CPF: "-", Sex: *c.Sex})
	}
	return nil
}

// IsEmpty reports whether the change set carries no fields.
func (c ProductChangeSet) IsEmpty() bool { return len(c.toMap()) == 0 }

// IsEmpty reports whether the change set carries no fields.
func (c ClientChangeSet) IsEmpty() bool { return len(c.toMap()) == 0 }

// Normalize applies domain normalization to the fields present in the change set.
func (c ProductChangeSet) Normalize() ProductChangeSet {
	c.Code = normText(c.Code)
	c.Description = normText(c.Description)
	c.Color = normOption(c.Color)
	c.Size = normOption(c.Size)
	c.Fit = normOption(c.Fit)
	c.Gender = normOption(c.Gender)
	c.Group = normOption(c.Group)
	c.Subgroup = normOption(c.Subgroup)
	c.CostPrice = roundPrice(c.CostPrice)
	c.SalePrice = roundPrice(c.SalePrice)
	return c
}

// Normalize applies domain normalization to the fields present in the change set.
func (c ClientChangeSet) Normalize() ClientChangeSet {
	c.Name = normText(c.Name)
	c.CPF = normText(c.CPF)
	c.Sex = normOption(c.Sex)
	c.Phone = normText(c.Phone)
	c.Email = normText(c.Email)
	return c
}

func normText(s *string) *string {
	if s == nil {
		return nil
	}
	v := domain.NormalizeText(*s)
	return &v
}

func normOption[T ~string](o *T) *T {
	if o == nil {
		return nil
	}
	v := T(domain.NormalizeOption(string(*o)))
	return &v
}

func roundPrice(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := d.Round(domain.PriceScale)
	return &v
}
