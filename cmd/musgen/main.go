// Command musgen regenerates catalogio's binary marshallers from the
// catalogio DTO structs: add each struct once, run "go run
// ./cmd/musgen" after changing a DTO's field set, and commit the
// regenerated file.
package main

import (
	"os"
	"reflect"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"

	"github.com/typesig/apisearch/catalogio"
)

func main() {
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/typesig/apisearch/catalogio"),
	)
	if err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.IdentityDTO](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.LowTypeDTO](),
		structops.WithField(), // Kind
		structops.WithField(), // Tag
		structops.WithField(), // Source
		structops.WithField(), // VarName
		structops.WithField(), // Solved
		structops.WithField(), // Identity
		structops.WithField(), // Elements
		structops.WithField(), // Optional
		structops.WithField(), // IsStruct
		structops.WithField(), // Ctor
		structops.WithField(), // Abbreviation
		structops.WithField(), // Original
		structops.WithField()); err != nil { // Signature
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.ParameterDTO](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.MemberDTO](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.ConstraintDTO](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.BuilderDTO](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.SignatureDTO](),
		structops.WithField(), structops.WithField(), structops.WithField(), structops.WithField(),
		structops.WithField(), structops.WithField(), structops.WithField(), structops.WithField(),
		structops.WithField(), structops.WithField(), structops.WithField(), structops.WithField(),
		structops.WithField(), structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.TypeDefDTO](),
		structops.WithField(), structops.WithField(), structops.WithField(), structops.WithField(),
		structops.WithField(), structops.WithField(), structops.WithField(), structops.WithField(),
		structops.WithField(), structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.AbbrevDTO](),
		structops.WithField(), structops.WithField(), structops.WithField(), structops.WithField(),
		structops.WithField(), structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.ApiDTO](),
		structops.WithField(), structops.WithField(), structops.WithField(),
		structops.WithField()); err != nil {
		panic(err)
	}

	if err := g.AddStruct(reflect.TypeFor[catalogio.CatalogDTO](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField()); err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile("./catalogio/catalog_mus.gen.go", bs, 0644); err != nil {
		panic(err)
	}
}
