package main

import (
	"flag"
	"fmt"
	"go/types"
	"os"

	"golang.org/x/tools/go/packages"
)

func main() {
	// Special env variable set by "go generate"
	goFile := os.Getenv("GOFILE")

	out := flag.String("out", "", "output file (defaults to <type>_gen.go next to the source)")
	pkgName := flag.String("pkg", "repository", "package name of the generated file")
	flag.Parse()

	if flag.NArg() != 1 {
		failErr(fmt.Errorf("expected exactly one argument: [source type]"))
	}
	if goFile == "" {
		failErr(fmt.Errorf("GOFILE not set, run via go generate"))
	}

	sourceType := flag.Arg(0)

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedFiles | packages.NeedSyntax}
	pkgs, err := packages.Load(cfg, fmt.Sprintf("file=%s", goFile))
	if err != nil {
		failErr(fmt.Errorf("loading packages for inspection: %v", err))
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}

	pkg := pkgs[0]

	obj := pkg.Types.Scope().Lookup(sourceType)
	if obj == nil {
		failErr(fmt.Errorf("%s not found in lookup", sourceType))
	}

	typeName, ok := obj.(*types.TypeName)
	if !ok {
		failErr(fmt.Errorf("%v is not a named type", obj))
	}
	structType, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		failErr(fmt.Errorf("type %v is a %T, not a struct", obj, obj.Type().Underlying()))
	}

	fields, err := parseFields(structType)
	if err != nil {
		failErr(fmt.Errorf("inspecting %s: %w", sourceType, err))
	}

	f, err := generate(*pkgName, typeName, fields)
	if err != nil {
		failErr(fmt.Errorf("generating %s: %w", sourceType, err))
	}

	target := *out
	if target == "" {
		target = lowerFirst(sourceType) + "_gen.go"
	}
	if err := f.Save(target); err != nil {
		failErr(fmt.Errorf("writing %s: %w", target, err))
	}
}

func failErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
