package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "enumvalidator",
	Doc:  "checks that workflow enum fields only use defined constants, not string literals",
	Run:  run,
}

// enumTypes are the closed string enums of the workflow model.
var enumTypes = map[string]bool{
	"Stage":            true,
	"Role":             true,
	"JournalRole":      true,
	"ActivityCategory": true,
	"EventType":        true,
	"NotificationKind": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				checkAssign(pass, node)
			case *ast.CompositeLit:
				checkCompositeLit(pass, node)
			}
			return true
		})
	}
	return nil, nil
}

func checkAssign(pass *analysis.Pass, assign *ast.AssignStmt) {
	for i, lhs := range assign.Lhs {
		if i >= len(assign.Rhs) {
			continue
		}
		sel, ok := lhs.(*ast.SelectorExpr)
		if !ok {
			continue
		}
		if isEnum(pass.TypesInfo.TypeOf(sel)) && isStringLiteral(assign.Rhs[i]) {
			pass.Reportf(assign.Pos(),
				"enum field %s assigned string literal; use defined constant instead",
				sel.Sel.Name)
		}
	}
}

func checkCompositeLit(pass *analysis.Pass, lit *ast.CompositeLit) {
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			continue
		}
		if _, isField := pass.TypesInfo.ObjectOf(key).(*types.Var); !isField {
			continue
		}
		if isEnum(pass.TypesInfo.TypeOf(key)) && isStringLiteral(kv.Value) {
			pass.Reportf(kv.Pos(),
				"enum field %s set to string literal; use defined constant instead",
				key.Name)
		}
	}
}

func isEnum(t types.Type) bool {
	named, ok := t.(*types.Named)
	return ok && enumTypes[named.Obj().Name()]
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
