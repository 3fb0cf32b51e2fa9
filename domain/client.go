package domain

//go:generate go run github.com/pinnacle/erp/cmd/generator -out ../repository/client_gen.go Client

// Client is a registered customer. CPF is unique across all clients.
type Client struct {
	ID        int64     `col:"id,readonly" json:"id"`
	Name      string    `col:"nome" json:"name"`
	CPF       string    `col:"cpf" json:"cpf"`
	Sex       Sex       `col:"sexo" json:"sex"`
	BirthDate BirthDate `col:"nascimento" json:"birth_date"`
	Phone     string    `col:"telefone" json:"phone"`
	Email     string    `col:"email" json:"email"`
}
