//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/titpetric/dbdocs/docs"
	"github.com/titpetric/dbdocs/inject"
)

func newGenerator(ctx context.Context, config *inject.Config) (*docs.Generator, func(), error) {
	wire.Build(inject.Inject)
	return nil, nil, nil
}
