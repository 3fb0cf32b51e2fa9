package main

import (
	"bytes"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientType(t *testing.T) (*types.TypeName, *types.Struct) {
	t.Helper()
	pkg := types.NewPackage("github.com/pinnacle/erp/domain", "domain")
	sexObj := types.NewTypeName(token.NoPos, pkg, "Sex", nil)
	sex := types.NewNamed(sexObj, types.Typ[types.String], nil)

	vars := []*types.Var{
		types.NewField(token.NoPos, pkg, "ID", types.Typ[types.Int64], false),
		types.NewField(token.NoPos, pkg, "Name", types.Typ[types.String], false),
		types.NewField(token.NoPos, pkg, "Sex", sex, false),
		types.NewField(token.NoPos, pkg, "note", types.Typ[types.String], false),
	}
	tags := []string{`col:"id,readonly" json:"id"`, `col:"nome"`, `col:"sexo"`, `json:"-"`}
	st := types.NewStruct(vars, tags)

	obj := types.NewTypeName(token.NoPos, pkg, "Client", nil)
	types.NewNamed(obj, st, nil)
	return obj, st
}

func TestParseFields(t *testing.T) {
	_, st := clientType(t)

	fields, err := parseFields(st)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "ID", fields[0].Name)
	assert.Equal(t, "id", fields[0].Column)
	assert.True(t, fields[0].ReadOnly)
	assert.Equal(t, "nome", fields[1].Column)
	assert.False(t, fields[1].ReadOnly)
	assert.Equal(t, "sexo", fields[2].Column)
}

func TestParseFields_Errors(t *testing.T) {
	pkg := types.NewPackage("example.com/x", "x")
	v := types.NewField(token.NoPos, pkg, "A", types.Typ[types.String], false)

	_, err := parseFields(types.NewStruct([]*types.Var{v}, []string{`col:"a,unique"`}))
	assert.ErrorContains(t, err, "unknown col option")

	_, err = parseFields(types.NewStruct([]*types.Var{v}, []string{`col:""`}))
	assert.ErrorContains(t, err, "empty column name")

	_, err = parseFields(types.NewStruct([]*types.Var{v}, []string{``}))
	assert.ErrorContains(t, err, "no fields")
}

func TestGenerate(t *testing.T) {
	obj, st := clientType(t)
	fields, err := parseFields(st)
	require.NoError(t, err)

	f, err := generate("repository", obj, fields)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "// Code generated by generator; DO NOT EDIT.")
	assert.Contains(t, out, "package repository")
	assert.Contains(t, out, `const clientTable = "clients"`)
	assert.Contains(t, out, `var clientColumns = []string{"id", "nome", "sexo"}`)
	assert.Contains(t, out, "type ClientChangeSet struct")
	assert.Contains(t, out, "func clientChangeSetOf(c domain.Client) ClientChangeSet")
	assert.Contains(t, out, "func (c ClientChangeSet) toMap() map[string]interface{}")
	assert.Contains(t, out, "func scanClient(row squirrel.RowScanner) (domain.Client, error)")
	assert.Contains(t, out, "err := row.Scan(&c.ID, &c.Name, &c.Sex)")
	assert.Contains(t, out, `"sexo": string(c.Sex)`)
	assert.Contains(t, out, `m["sexo"] = string(*c.Sex)`)
	assert.NotContains(t, out, "note")
}

func TestTypeCode_Unsupported(t *testing.T) {
	_, err := typeCode(types.NewMap(types.Typ[types.String], types.Typ[types.Int]))
	assert.Error(t, err)
}
