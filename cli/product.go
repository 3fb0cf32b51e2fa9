package cli

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pinnacle/erp/domain"
	"github.com/pinnacle/erp/repository"
)

// NewProductCommand creates the product command group.
func NewProductCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}

	cmd.AddCommand(newProductAddCommand(rootOpts))
	cmd.AddCommand(newProductListCommand(rootOpts))
	cmd.AddCommand(newProductUpdateCommand(rootOpts))
	cmd.AddCommand(newProductDeleteCommand(rootOpts))

	return cmd
}

// productFlags holds the raw product form values.
type productFlags struct {
	code        string
	color       string
	description string
	size        string
	fit         string
	gender      string
	group       string
	subgroup    string
	costPrice   string
	salePrice   string
	stock       int
}

func (pf *productFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&pf.code, "code", "", "product code")
	fs.StringVar(&pf.color, "color", "", "color (PRETA, BRANCA, AZUL, CINZA, VERDE, VERMELHA, BEGE, MARROM)")
	fs.StringVar(&pf.description, "description", "", "product description")
	fs.StringVar(&pf.size, "size", "", "size (P, M, G)")
	fs.StringVar(&pf.fit, "fit", "", "fit (SLIM, REGULAR, OVER)")
	fs.StringVar(&pf.gender, "gender", "", "gender (MASCULINO, FEMININO, UNISSEX)")
	fs.StringVar(&pf.group, "group", "", "group (T-SHIRT MC, CALCA, BERMUDA, CASACO, CAMISA MC)")
	fs.StringVar(&pf.subgroup, "subgroup", "", "subgroup (SLIM, OVER, REGULAR)")
	fs.StringVar(&pf.costPrice, "cost", "0", "cost price, e.g. 10.50 or 10,50")
	fs.StringVar(&pf.salePrice, "price", "0", "sale price, e.g. 20.00 or 20,00")
	fs.IntVar(&pf.stock, "stock", 0, "units in stock")
}

func (pf *productFlags) product() (domain.Product, error) {
	cost, err := parsePrice("preco_custo", pf.costPrice)
	if err != nil {
		return domain.Product{}, err
	}
	sale, err := parsePrice("preco_venda", pf.salePrice)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		Code:        pf.code,
		Color:       domain.Color(pf.color),
		Description: pf.description,
		Size:        domain.Size(pf.size),
		Fit:         domain.Fit(pf.fit),
		Gender:      domain.Gender(pf.gender),
		Group:       domain.Group(pf.group),
		Subgroup:    domain.Subgroup(pf.subgroup),
		CostPrice:   cost,
		SalePrice:   sale,
		Stock:       pf.stock,
	}, nil
}

// changeSet collects only the flags given on the command line.
func (pf *productFlags) changeSet(fs *pflag.FlagSet) (repository.ProductChangeSet, error) {
	var cs repository.ProductChangeSet
	if fs.Changed("code") {
		cs.Code = &pf.code
	}
	if fs.Changed("color") {
		v := domain.Color(pf.color)
		cs.Color = &v
	}
	if fs.Changed("description") {
		cs.Description = &pf.description
	}
	if fs.Changed("size") {
		v := domain.Size(pf.size)
		cs.Size = &v
	}
	if fs.Changed("fit") {
		v := domain.Fit(pf.fit)
		cs.Fit = &v
	}
	if fs.Changed("gender") {
		v := domain.Gender(pf.gender)
		cs.Gender = &v
	}
	if fs.Changed("group") {
		v := domain.Group(pf.group)
		cs.Group = &v
	}
	if fs.Changed("subgroup") {
		v := domain.Subgroup(pf.subgroup)
		cs.Subgroup = &v
	}
	if fs.Changed("cost") {
		v, err := parsePrice("preco_custo", pf.costPrice)
		if err != nil {
			return cs, err
		}
		cs.CostPrice = &v
	}
	if fs.Changed("price") {
		v, err := parsePrice("preco_venda", pf.salePrice)
		if err != nil {
			return cs, err
		}
		cs.SalePrice = &v
	}
	if fs.Changed("stock") {
		cs.Stock = &pf.stock
	}
	return cs, nil
}

// parsePrice accepts both "10.50" and the Brazilian "10,50".
func parsePrice(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Field: field, Message: "not a number: " + s}
	}
	return d, nil
}

func newProductAddCommand(rootOpts *RootOptions) *cobra.Command {
	pf := &productFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a product",
		Example: `  erp product add --code A1 --color PRETA --description Camisa --size M \
    --fit SLIM --gender MASCULINO --group "CAMISA MC" --subgroup SLIM \
    --cost 10,00 --price 20,00 --stock 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				p, err := pf.product()
				if err != nil {
					return err
				}
				added, err := s.service.AddProduct(cmd.Context(), p)
				if err != nil {
					return err
				}
				f.Info("Produto salvo com sucesso! (id %d)", added.ID)
				return outputProducts(cmd.Context(), f, s, map[string]interface{}{"saved": added})
			})
		},
	}
	pf.bind(cmd.Flags())
	return cmd
}

func newProductListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List all products",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				return outputProducts(cmd.Context(), f, s, map[string]interface{}{})
			})
		},
	}
}

func newProductUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	pf := &productFlags{}
	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Change the given fields of a product",
		Example:       `  erp product update 1 --stock 12 --price 24,90`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				changes, err := pf.changeSet(cmd.Flags())
				if err != nil {
					return err
				}
				if changes.IsEmpty() {
					return errNoChanges
				}
				updated, err := s.service.EditProduct(cmd.Context(), id, changes)
				if err != nil {
					return err
				}
				if updated {
					f.Info("Produto %d atualizado.", id)
				} else {
					f.Info("Nenhum produto com id %d.", id)
				}
				return outputProducts(cmd.Context(), f, s, map[string]interface{}{"id": id, "updated": updated})
			})
		},
	}
	pf.bind(cmd.Flags())
	return cmd
}

func newProductDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a product",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				deleted, err := s.service.RemoveProduct(cmd.Context(), id)
				if err != nil {
					return err
				}
				if f.JSON() {
					return f.Success(map[string]interface{}{"id": id, "deleted": deleted})
				}
				if deleted {
					f.Info("Produto %d excluído.", id)
				} else {
					f.Info("Nenhum produto com id %d.", id)
				}
				return nil
			})
		},
	}
}

// outputProducts lists the products after a command, as a table in text mode
// or merged into data under "products" in JSON mode.
func outputProducts(ctx context.Context, f *OutputFormatter, s *session, data map[string]interface{}) error {
	products, err := s.service.Products(ctx)
	if err != nil {
		return err
	}
	if f.JSON() {
		data["products"] = products
		return f.Success(data)
	}
	return renderProducts(f.Writer, products)
}
