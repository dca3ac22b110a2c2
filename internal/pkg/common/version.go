package common

// EvaluatorVersion is major*100 + minor.
const EvaluatorVersion uint = 100
