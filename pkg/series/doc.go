// Package series assembles chart data in the nested-array shape the plot
// runtime expects: one array per series, each holding [x,y] tuples.
//
//	b := &series.Builder{}
//	doubles, _ := b.CreateTimeLineWithDoubleValues(js.DateOnly)
//	doubles.AddIfNotEmpty(optional.Some(day), optional.Some(10.0))
//	data := b.Build()
//	// [[["2015-10-30",10.000]]]
//
// [Seria] drops incomplete tuples silently. [TimeLineSeries.Add] is strict
// and rejects missing coordinates with NULL_ARGUMENT; AddIfNotEmpty is its
// lenient counterpart.
package series
