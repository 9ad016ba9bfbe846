// Package shunt implements a tokenizer and an operator-precedence parser for
// arithmetic expressions with let bindings.
//
// Expressions contain numbers, variable names, the binary operators + - * /
// and ^, prefix negation, and parentheses. "-2^2^n" is the same as
// "-(2^(2^n))": exponentiation is right-associative and binds tighter than
// negation, which binds tighter than multiplication. Variable names are a
// letter followed only by digits, so "xy" is two names and "x1" is one.
//
// A program is any number of statements like "let a = 2;" followed by an
// expression. Parsing a program gives an ExprBlock of ExprLet nodes and the
// final expression.
//
package shunt
