// Package armageddon provides the dataset preprocessing layer for the
// temporal fusion transformer volatility experiments.
//
// The module declares the column schema of each experiment table, calibrates
// normalization and encoding statistics from the training split, applies the
// transforms consistently across train/validation/test, and reverses target
// scaling on model output. The forecasting model itself, the training loop
// and experiment orchestration live outside this module and consume the
// transformed tables it produces.
//
// # Quick start
//
//	df, err := dataframe.ReadCSVFile("volatility.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	formatter := formatters.NewVolatilityFormatter()
//	train, valid, test, err := formatter.SplitData(df,
//	    formatters.DefaultValidBoundary, formatters.DefaultTestBoundary)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... train the model on train/valid, predict on test ...
//
//	restored, err := formatter.FormatPredictions(predictions)
//
// Formatter instances own their scaler state exclusively and provide no
// internal locking; concurrent use of one instance must be serialized by the
// caller.
package armageddon
