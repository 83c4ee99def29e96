// Package diagnostic provides structured errors, warnings and notes
// produced while validating a bindings file or checking templates
// against the loaded resource specification.
//
// Diagnostics are collected rather than returned one at a time so that a
// single run can report every unknown resource type, bad override and
// template property problem at once.
package diagnostic
