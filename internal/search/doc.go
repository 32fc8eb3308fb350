// Package search enumerates postfix expressions over a fixed alphabet,
// evaluates them under exact integer arithmetic, renders them as minimally
// parenthesized infix strings, and keeps the shortest rendering per result.
package search
