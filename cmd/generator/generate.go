package main

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
)

const squirrelPath = "github.com/Masterminds/squirrel"

type field struct {
	Name     string
	Column   string
	ReadOnly bool
	Type     types.Type
}

// parseFields collects the struct fields carrying a `col` tag. The tag value is
// the column name, optionally followed by ",readonly" for store-assigned columns.
func parseFields(structType *types.Struct) ([]field, error) {
	var fields []field
	for i := 0; i < structType.NumFields(); i++ {
		v := structType.Field(i)
		tag, ok := reflect.StructTag(structType.Tag(i)).Lookup("col")
		if !ok {
			continue
		}
		parts := strings.Split(tag, ",")
		if parts[0] == "" {
			return nil, fmt.Errorf("field %s: empty column name", v.Name())
		}
		f := field{Name: v.Name(), Column: parts[0], Type: v.Type()}
		for _, opt := range parts[1:] {
			switch opt {
			case "readonly":
				f.ReadOnly = true
			default:
				return nil, fmt.Errorf("field %s: unknown col option %q", v.Name(), opt)
			}
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields with a col tag")
	}
	return fields, nil
}

// generate renders the column list, field map, change set and row scanner for
// the named struct type.
func generate(pkgName string, obj *types.TypeName, fields []field) (*jen.File, error) {
	name := obj.Name()
	lower := lowerFirst(name)
	recv := lower[:1]
	record := jen.Qual(obj.Pkg().Path(), name)
	changeSet := name + "ChangeSet"

	typeCodes := make(map[string]jen.Code, len(fields))
	for _, fld := range fields {
		c, err := typeCode(fld.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fld.Name, err)
		}
		typeCodes[fld.Name] = c
	}

	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by generator; DO NOT EDIT.")

	f.Const().Id(lower + "Table").Op("=").Lit(lower + "s")

	f.Var().Id(lower + "Columns").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, fld := range fields {
			g.Lit(fld.Column)
		}
	})

	f.Func().Id(lower+"Fields").Params(jen.Id(recv).Add(record)).Map(jen.String()).Interface().Block(
		jen.Return(jen.Map(jen.String()).Interface().Values(jen.DictFunc(func(d jen.Dict) {
			for _, fld := range fields {
				if fld.ReadOnly {
					continue
				}
				d[jen.Lit(fld.Column)] = driverValue(fld.Type, jen.Id(recv).Dot(fld.Name))
			}
		}))),
	)

	f.Commentf("%s holds %s fields to update. Nil fields are left unchanged.", changeSet, lower)
	f.Type().Id(changeSet).StructFunc(func(g *jen.Group) {
		for _, fld := range fields {
			if fld.ReadOnly {
				continue
			}
			g.Id(fld.Name).Op("*").Add(typeCodes[fld.Name])
		}
	})

	f.Commentf("%sChangeSetOf returns a change set replacing every mutable field of %s.", lower, recv)
	f.Func().Id(lower+"ChangeSetOf").Params(jen.Id(recv).Add(record)).Id(changeSet).Block(
		jen.Return(jen.Id(changeSet).Values(jen.DictFunc(func(d jen.Dict) {
			for _, fld := range fields {
				if fld.ReadOnly {
					continue
				}
				d[jen.Id(fld.Name)] = jen.Op("&").Id(recv).Dot(fld.Name)
			}
		}))),
	)

	f.Func().Params(jen.Id("c").Id(changeSet)).Id("toMap").Params().Map(jen.String()).Interface().BlockFunc(func(g *jen.Group) {
		g.Id("m").Op(":=").Map(jen.String()).Interface().Values()
		for _, fld := range fields {
			if fld.ReadOnly {
				continue
			}
			g.If(jen.Id("c").Dot(fld.Name).Op("!=").Nil()).Block(
				jen.Id("m").Index(jen.Lit(fld.Column)).Op("=").Add(driverValue(fld.Type, jen.Op("*").Id("c").Dot(fld.Name))),
			)
		}
		g.Return(jen.Id("m"))
	})

	f.Func().Id("scan"+name).Params(jen.Id("row").Qual(squirrelPath, "RowScanner")).Params(record, jen.Error()).Block(
		jen.Var().Id(recv).Add(record),
		jen.Err().Op(":=").Id("row").Dot("Scan").CallFunc(func(g *jen.Group) {
			for _, fld := range fields {
				g.Op("&").Id(recv).Dot(fld.Name)
			}
		}),
		jen.Return(jen.Id(recv), jen.Err()),
	)

	return f, nil
}

// driverValue converts named basic types without a Value method to their
// underlying type, so drivers with strict argument checks accept them.
func driverValue(t types.Type, expr *jen.Statement) jen.Code {
	named, ok := t.(*types.Named)
	if !ok {
		return expr
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok {
		return expr
	}
	if obj, _, _ := types.LookupFieldOrMethod(named, false, named.Obj().Pkg(), "Value"); obj != nil {
		return expr
	}
	return jen.Id(basic.Name()).Call(expr)
}

func typeCode(t types.Type) (jen.Code, error) {
	switch t := t.(type) {
	case *types.Basic:
		return jen.Id(t.Name()), nil
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() == nil {
			return jen.Id(obj.Name()), nil
		}
		return jen.Qual(obj.Pkg().Path(), obj.Name()), nil
	case *types.Pointer:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Op("*").Add(elem), nil
	case *types.Slice:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil
	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
