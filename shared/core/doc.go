// Package core contains the roster domain vocabulary: the five houses, the seven fixed
// roster buckets, the classification policy that puts a record into at most one bucket,
// and small pure helpers for building sorted name lists.
//
// Everything in here is a pure function over roster.Record values. Reading the source,
// observability and configuration live in the shell.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
