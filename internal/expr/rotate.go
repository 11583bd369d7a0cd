package expr

// Rotate corrects one level of precedence inversion left by eager right
// recursion: Mul(a, Plus(b, c)) becomes Plus(Mul(a, b), c). The same holds
// for Div and Minus in either position.
//
// Only the root is inspected. Deeper inversions and chains such as
// a * b * c + d are left as parsed.
func Rotate(e Expr) Expr {
	outer, ok := e.(*BinaryExpr)
	if !ok || !outer.Op.IsMultiplicative() {
		return e
	}
	inner, ok := outer.RHS.(*BinaryExpr)
	if !ok || !inner.Op.IsAdditive() {
		return e
	}

	return &BinaryExpr{
		Op:  inner.Op,
		LHS: &BinaryExpr{Op: outer.Op, LHS: outer.LHS, RHS: inner.LHS},
		RHS: inner.RHS,
	}
}

// Equal reports whether two trees have the same shape, operators and
// number text.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case *NumberExpr:
		return av.Text == b.(*NumberExpr).Text
	case *UnaryExpr:
		bv := b.(*UnaryExpr)
		return av.Op == bv.Op && Equal(av.Child, bv.Child)
	case *BinaryExpr:
		bv := b.(*BinaryExpr)
		return av.Op == bv.Op && Equal(av.LHS, bv.LHS) && Equal(av.RHS, bv.RHS)
	case *GroupExpr:
		return Equal(av.Child, b.(*GroupExpr).Child)
	default:
		return true
	}
}
