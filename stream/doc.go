// Package stream connects edge sources to triangle estimators.
//
// It provides a Reader for plain-text edge lists (SNAP style "u v" lines,
// comma or whitespace separated, '#' and '%' comments), a Source interface
// with an in-memory SliceSource, WriteEdges for the inverse direction, and
// Run, the driver loop that feeds a triest.Estimator one edge at a time with
// optional periodic progress reports and zerolog logging.
//
//	f, _ := os.Open("graph.txt")
//	c, _ := triest.NewImproved[int64](100_000)
//	sum, err := stream.Run(ctx, stream.NewReader(f), c,
//		stream.WithReportEvery(1_000_000),
//		stream.WithLogger(log))
package stream
