package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pinnacle/erp/domain"
	"github.com/pinnacle/erp/repository"
)

// NewClientCommand creates the client command group.
func NewClientCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(newClientAddCommand(rootOpts))
	cmd.AddCommand(newClientListCommand(rootOpts))
	cmd.AddCommand(newClientUpdateCommand(rootOpts))
	cmd.AddCommand(newClientDeleteCommand(rootOpts))

	return cmd
}

type clientFlags struct {
	name      string
	cpf       string
	sex       string
	birthDate string
	phone     string
	email     string
}

func (cf *clientFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&cf.name, "name", "", "full name")
	fs.StringVar(&cf.cpf, "cpf", "", "CPF (unique per client)")
	fs.StringVar(&cf.sex, "sex", "", "sex (MASCULINO, FEMININO, OUTRO)")
	fs.StringVar(&cf.birthDate, "birth-date", "", "birth date as DD/MM/YYYY")
	fs.StringVar(&cf.phone, "phone", "", "phone number")
	fs.StringVar(&cf.email, "email", "", "e-mail address")
}

func (cf *clientFlags) client() (domain.Client, error) {
	bd, err := domain.ParseBirthDate(cf.birthDate)
	if err != nil {
		return domain.Client{}, err
	}
	return domain.Client{
		Name:      cf.name,
		CPF:       cf.cpf,
		Sex:       domain.Sex(cf.sex),
		BirthDate: bd,
		Phone:     cf.phone,
		Email:     cf.email,
	}, nil
}

// changeSet collects only the flags given on the command line.
func (cf *clientFlags) changeSet(fs *pflag.FlagSet) (repository.ClientChangeSet, error) {
	var cs repository.ClientChangeSet
	if fs.Changed("name") {
		cs.Name = &cf.name
	}
	if fs.Changed("cpf") {
		cs.CPF = &cf.cpf
	}
	if fs.Changed("sex") {
		v := domain.Sex(cf.sex)
		cs.Sex = &v
	}
	if fs.Changed("birth-date") {
		bd, err := domain.ParseBirthDate(cf.birthDate)
		if err != nil {
			return cs, err
		}
		cs.BirthDate = &bd
	}
	if fs.Changed("phone") {
		cs.Phone = &cf.phone
	}
	if fs.Changed("email") {
		cs.Email = &cf.email
	}
	return cs, nil
}

func newClientAddCommand(rootOpts *RootOptions) *cobra.Command {
	cf := &clientFlags{}
	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Register a client",
		Example:       `  erp client add --name "Ana Souza" --cpf 12345678909 --sex FEMININO --birth-date 15/03/1992`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				c, err := cf.client()
				if err != nil {
					return err
				}
				added, err := s.service.AddClient(cmd.Context(), c)
				if err != nil {
					return err
				}
				f.Info("Cliente salvo com sucesso! (id %d)", added.ID)
				return outputClients(cmd.Context(), f, s, map[string]interface{}{"saved": added})
			})
		},
	}
	cf.bind(cmd.Flags())
	return cmd
}

func newClientListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List all clients",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				return outputClients(cmd.Context(), f, s, map[string]interface{}{})
			})
		},
	}
}

func newClientUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	cf := &clientFlags{}
	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Change the given fields of a client",
		Example:       `  erp client update 3 --phone "11 5555-0000"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				changes, err := cf.changeSet(cmd.Flags())
				if err != nil {
					return err
				}
				if changes.IsEmpty() {
					return errNoChanges
				}
				updated, err := s.service.EditClient(cmd.Context(), id, changes)
				if err != nil {
					return err
				}
				if updated {
					f.Info("Cliente %d atualizado.", id)
				} else {
					f.Info("Nenhum cliente com id %d.", id)
				}
				return outputClients(cmd.Context(), f, s, map[string]interface{}{"id": id, "updated": updated})
			})
		},
	}
	cf.bind(cmd.Flags())
	return cmd
}

func newClientDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a client",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(f *OutputFormatter, s *session) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				deleted, err := s.service.RemoveClient(cmd.Context(), id)
				if err != nil {
					return err
				}
				if f.JSON() {
					return f.Success(map[string]interface{}{"id": id, "deleted": deleted})
				}
				if deleted {
					f.Info("Cliente %d excluído.", id)
				} else {
					f.Info("Nenhum cliente com id %d.", id)
				}
				return nil
			})
		},
	}
}

func outputClients(ctx context.Context, f *OutputFormatter, s *session, data map[string]interface{}) error {
	clients, err := s.service.Clients(ctx)
	if err != nil {
		return err
	}
	if f.JSON() {
		data["clients"] = clients
		return f.Success(data)
	}
	return renderClients(f.Writer, clients)
}
