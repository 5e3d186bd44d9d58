package main

import (
	"github.com/otterize/logging-reader-provisioner/linters/sentinelerrors"
	"golang.org/x/tools/go/analysis"
)

// New is the entry point golangci-lint looks up when loading the plugin.
func New(_ any) ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{sentinelerrors.Analyzer}, nil
}
