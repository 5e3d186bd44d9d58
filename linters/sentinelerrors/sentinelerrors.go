package sentinelerrors

import (
	"go/ast"
	"go/token"
	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "sentinelerrors",
	Doc:  "checks that package level errors are created with errors.NewSentinelError, not with constructors that capture a stack trace",
	Run:  run,
}

// Constructors of the shared errors package that capture the stack of the caller. At package scope that stack
// is the init of the package, which is misleading in every report that carries it.
var stackCapturingConstructors = map[string]bool{
	"New":        true,
	"Errorf":     true,
	"KindErrorf": true,
	"WithKind":   true,
	"Wrap":       true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.VAR {
				continue
			}
			for _, spec := range genDecl.Specs {
				valueSpec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, value := range valueSpec.Values {
					checkValue(pass, value)
				}
			}
		}
	}
	return nil, nil
}

func checkValue(pass *analysis.Pass, value ast.Expr) {
	call, ok := value.(*ast.CallExpr)
	if !ok {
		return
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok || pkg.Name != "errors" || !stackCapturingConstructors[sel.Sel.Name] {
		return
	}
	pass.Reportf(call.Pos(), "package level error created with errors.%s, use errors.NewSentinelError", sel.Sel.Name)
}
