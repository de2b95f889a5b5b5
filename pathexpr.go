package pageport

import "strings"

// Dialect identifies the selector language of a PathExpr.
type Dialect string

// Supported selector dialects.
const (
	DialectCSS   Dialect = "css"
	DialectXPath Dialect = "xpath"
)

// PathExpr is a selector string tagged with its dialect.
// The expression itself is opaque; it is only interpreted by a query engine.
type PathExpr struct {
	Dialect Dialect
	Expr    string
}

// CSS returns expr tagged as a CSS selector.
func CSS(expr string) PathExpr {
	return PathExpr{Dialect: DialectCSS, Expr: expr}
}

// XPath returns expr tagged as an XPath expression.
func XPath(expr string) PathExpr {
	return PathExpr{Dialect: DialectXPath, Expr: expr}
}

// ParsePathExpr tags expr with a dialect based on its shape.
// Expressions starting with "/", "./", "../" or "(" (and the bare ".") are
// XPath; everything else is treated as CSS.
func ParsePathExpr(expr string) PathExpr {
	if looksLikeXPath(expr) {
		return XPath(expr)
	}
	return CSS(expr)
}

// ParsePathExprs tags each expression with ParsePathExpr.
func ParsePathExprs(exprs []string) []PathExpr {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]PathExpr, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, ParsePathExpr(expr))
	}
	return out
}

// String returns the raw expression.
func (p PathExpr) String() string {
	return p.Expr
}

// IsZero reports whether the expression is empty.
func (p PathExpr) IsZero() bool {
	return p.Expr == ""
}

func looksLikeXPath(expr string) bool {
	s := strings.TrimSpace(expr)
	return s == "." ||
		strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "./") ||
		strings.HasPrefix(s, "../") ||
		strings.HasPrefix(s, "(")
}
