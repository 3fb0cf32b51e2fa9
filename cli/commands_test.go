package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var scenarioFlags = []string{
	"--code", "A1", "--color", "PRETA", "--description", "Camisa", "--size", "M",
	"--fit", "SLIM", "--gender", "MASCULINO", "--group", "CAMISA MC", "--subgroup", "SLIM",
	"--cost", "10.00", "--price", "20,00", "--stock", "5",
}

type testEnv struct {
	t   *testing.T
	dir string
}

func newTestEnv(t *testing.T) *testEnv {
	return &testEnv{t: t, dir: t.TempDir()}
}

func (e *testEnv) options(format string) *RootOptions {
	return &RootOptions{
		Format:     format,
		ConfigPath: filepath.Join(e.dir, "erp.yaml"),
		DB:         filepath.Join(e.dir, "erp.db"),
		Logger:     zaptest.NewLogger(e.t),
	}
}

// run executes a command group built by newCmd and returns stdout, stderr and the error.
func (e *testEnv) run(format string, newCmd func(*RootOptions) *cobra.Command, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := newCmd(e.options(format))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

func TestProductAdd_Scenario(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("text", NewProductCommand, append([]string{"add"}, scenarioFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Produto salvo com sucesso! (id 1)")
	assert.Contains(t, out, "CAMISA MC")
	assert.Contains(t, out, "10,00")
	assert.Contains(t, out, "20,00")

	out, _, err = env.run("json", NewProductCommand, "list")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data := resp.Data.(map[string]interface{})
	products := data["products"].([]interface{})
	require.Len(t, products, 1)
	p := products[0].(map[string]interface{})
	assert.Equal(t, "A1", p["code"])
	assert.Equal(t, "PRETA", p["color"])
	assert.Equal(t, "CAMISA MC", p["group"])
	assert.Equal(t, float64(5), p["stock"])
}

func TestProductList_Empty(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("text", NewProductCommand, "list")
	require.NoError(t, err)
	assert.Equal(t, "Nenhum produto cadastrado.\n", out)
}

func TestProductAdd_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	args := []string{"add", "--code", "A1", "--price", "20"}
	_, errOut, err := env.run("text", NewProductCommand, args...)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, "E_VALIDATION")
	assert.Contains(t, errOut, "descricao_produto")

	out, _, err := env.run("text", NewProductCommand, "list")
	require.NoError(t, err)
	assert.Equal(t, "Nenhum produto cadastrado.\n", out)
}

func TestProductAdd_BadPriceJSON(t *testing.T) {
	env := newTestEnv(t)

	args := append([]string{"add"}, scenarioFlags...)
	args = append(args, "--price", "vinte")
	out, _, err := env.run("json", NewProductCommand, args...)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "preco_venda")
}

func TestProductUpdate_OnlyGivenFlags(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run("text", NewProductCommand, append([]string{"add"}, scenarioFlags...)...)
	require.NoError(t, err)

	out, _, err := env.run("text", NewProductCommand, "update", "1", "--stock", "9", "--price", "24,90")
	require.NoError(t, err)
	assert.Contains(t, out, "Produto 1 atualizado.")

	out, _, err = env.run("json", NewProductCommand, "list")
	require.NoError(t, err)
	products := decodeResponse(t, out).Data.(map[string]interface{})["products"].([]interface{})
	require.Len(t, products, 1)
	p := products[0].(map[string]interface{})
	assert.Equal(t, float64(9), p["stock"])
	assert.Equal(t, "24.9", p["sale_price"])
	assert.Equal(t, "Camisa", p["description"])
	assert.Equal(t, "SLIM", p["fit"])
}

func TestProductUpdate_MissingIDIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("text", NewProductCommand, "update", "99", "--stock", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum produto com id 99.")
	assert.Contains(t, out, "Nenhum produto cadastrado.")
}

func TestProductUpdate_CommandErrors(t *testing.T) {
	env := newTestEnv(t)

	_, errOut, err := env.run("text", NewProductCommand, "update", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "E_COMMAND")

	_, _, err = env.run("text", NewProductCommand, "update", "abc", "--stock", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = env.run("text", NewProductCommand, "update", "1", "--stock", "-3")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestProductDelete(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run("text", NewProductCommand, append([]string{"add"}, scenarioFlags...)...)
	require.NoError(t, err)

	out, _, err := env.run("text", NewProductCommand, "delete", "1")
	require.NoError(t, err)
	assert.Equal(t, "Produto 1 excluído.\n", out)

	out, _, err = env.run("json", NewProductCommand, "delete", "1")
	require.NoError(t, err)
	data := decodeResponse(t, out).Data.(map[string]interface{})
	assert.Equal(t, false, data["deleted"])

	out, _, err = env.run("text", NewProductCommand, "list")
	require.NoError(t, err)
	assert.Equal(t, "Nenhum produto cadastrado.\n", out)
}

func TestClientAdd_ListShowsBirthDate(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("text", NewClientCommand, "add",
		"--name", "Ana Souza", "--cpf", "12345678909", "--sex", "feminino", "--birth-date", "15/03/1992")
	require.NoError(t, err)
	assert.Contains(t, out, "Cliente salvo com sucesso! (id 1)")

	out, _, err = env.run("text", NewClientCommand, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Ana Souza")
	assert.Contains(t, lines[1], "FEMININO")
	assert.Contains(t, lines[1], "15/03/1992")
}

func TestClientAdd_DuplicateCPF(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run("text", NewClientCommand, "add", "--name", "Ana", "--cpf", "123")
	require.NoError(t, err)

	out, _, err := env.run("json", NewClientCommand, "add", "--name", "Bia", "--cpf", "123")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	resp := decodeResponse(t, out)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeDuplicate, resp.Error.Code)

	out, _, err = env.run("json", NewClientCommand, "list")
	require.NoError(t, err)
	clients := decodeResponse(t, out).Data.(map[string]interface{})["clients"].([]interface{})
	assert.Len(t, clients, 1)
}

func TestClientAdd_InvalidBirthDate(t *testing.T) {
	env := newTestEnv(t)

	_, errOut, err := env.run("text", NewClientCommand, "add", "--name", "Ana", "--cpf", "1", "--birth-date", "31/02/2000")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, "E_VALIDATION")
	assert.Contains(t, errOut, "31/02/2000")
}

func TestClientUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run("text", NewClientCommand, "add", "--name", "Ana", "--cpf", "1", "--birth-date", "01/01/2000")
	require.NoError(t, err)

	out, _, err := env.run("text", NewClientCommand, "update", "1", "--phone", "11 5555-0000", "--birth-date", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Cliente 1 atualizado.")
	assert.Contains(t, out, "11 5555-0000")
	assert.NotContains(t, out, "01/01/2000")

	out, _, err = env.run("text", NewClientCommand, "update", "7", "--name", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum cliente com id 7.")

	out, _, err = env.run("text", NewClientCommand, "delete", "1")
	require.NoError(t, err)
	assert.Equal(t, "Cliente 1 excluído.\n", out)

	out, _, err = env.run("text", NewClientCommand, "list")
	require.NoError(t, err)
	assert.Equal(t, "Nenhum cliente cadastrado.\n", out)
}

func TestInit_WritesConfigOnce(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("json", NewInitCommand)
	require.NoError(t, err)
	data := decodeResponse(t, out).Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["schema_version"])
	assert.Equal(t, true, data["config_written"])
	assert.FileExists(t, filepath.Join(env.dir, "erp.yaml"))

	out, _, err = env.run("text", NewInitCommand)
	require.NoError(t, err)
	assert.Equal(t, "Banco de dados pronto (schema versão 2).\n", out)
}

func TestStrictEnumsFromConfig(t *testing.T) {
	env := newTestEnv(t)
	cfg := "database:\n  driver: sqlite3\n  dsn: ignored.db\nvalidation:\n  strict_enums: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "erp.yaml"), []byte(cfg), 0644))

	args := append([]string{"add"}, scenarioFlags...)
	args = append(args, "--size", "GG")
	_, errOut, err := env.run("text", NewProductCommand, args...)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, "tamanho")
}

func TestInvalidConfigIsCommandError(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "erp.yaml"), []byte("database:\n  driver: oracle\n"), 0644))

	_, errOut, err := env.run("text", NewProductCommand, "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "oracle")
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--format", "xml", "product", "list"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
