// Package value implements Viper's runtime value system: the three
// primitive kinds (num, bool, String) and the operator semantics that
// combine them. Functions are not first-class values — a FuncDef symbol
// entry holds the defining *ast.Function node directly, and only its
// "func" dataType tag lives here.
package value
