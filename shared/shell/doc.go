// Package shell provides the query contracts and the observability helpers shared by the
// roster query feature slices.
//
// It sits between the record source (roster/fileengine) and the pure projections of the
// feature slices: a handler scans the source through the ScansRecords contract and hands
// the records to a projection. Metric names, log messages and span helpers used by the
// observable query wrapper are defined here so that all slices report the same way.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
