package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "forbiddencalls"
	analyzerDoc  = "reports panic, log.Fatal, os.Exit and zerolog Fatal/Panic outside func main of package main"
)

// Analyzer reports calls that terminate the process anywhere except the
// main function of a main package.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// forbidden lists package-level functions by import path.
var forbidden = map[string]map[string]bool{
	"log": {
		"Fatal": true, "Fatalf": true, "Fatalln": true,
		"Panic": true, "Panicf": true, "Panicln": true,
	},
	"os": {
		"Exit": true,
	},
	"github.com/rs/zerolog/log": {
		"Fatal": true, "Panic": true,
	},
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	insp.WithStack(nodeFilter, func(node ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		callExpr := node.(*ast.CallExpr)
		name, ok := forbiddenCall(pass, callExpr)
		if !ok {
			return true
		}

		if pass.Pkg.Name() == "main" && inMainFunc(stack) {
			return true
		}

		pass.Reportf(callExpr.Pos(), "%s is forbidden outside main function", name)
		return true
	})

	return nil, nil
}

// forbiddenCall reports whether the call is one of the forbidden functions
// and returns its printable name.
func forbiddenCall(pass *analysis.Pass, callExpr *ast.CallExpr) (string, bool) {
	switch fn := callExpr.Fun.(type) {
	case *ast.Ident:
		if _, ok := pass.TypesInfo.Uses[fn].(*types.Builtin); ok && fn.Name == "panic" {
			return "panic", true
		}
	case *ast.SelectorExpr:
		ident, ok := fn.X.(*ast.Ident)
		if !ok {
			return "", false
		}

		pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
		if !ok {
			return "", false
		}

		if forbidden[pkgName.Imported().Path()][fn.Sel.Name] {
			return ident.Name + "." + fn.Sel.Name, true
		}
	}

	return "", false
}

// inMainFunc reports whether the innermost enclosing function declaration
// on the stack is the top-level func main. Function literals inside main
// count as main.
func inMainFunc(stack []ast.Node) bool {
	for i := len(stack) - 1; i >= 0; i-- {
		if funcDecl, ok := stack[i].(*ast.FuncDecl); ok {
			return funcDecl.Recv == nil && funcDecl.Name.Name == "main"
		}
	}
	return false
}
