package types

// Record unification coverage (closed/closed, closed/open subsumption,
// open/open with a fresh shared tail, and field-type mismatches) lives in
// TestRowUnification_OpenClosedMatrix in row_unification_regression_test.go
// and TestUnifyRecords in unification_test.go.
