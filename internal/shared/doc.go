// Package shared holds helpers used across the uplcompare packages.
//
// The testutil subpackage provides a capturing slog handler and log
// assertions for tests:
//
//	func TestExport(t *testing.T) {
//	    logger, handler := testutil.NewTestLogger(t)
//	    wb := exporter.NewWorkbook(exporter.DefaultOptions(), logger)
//	    // ...
//	    testutil.AssertNoErrors(t, handler)
//	}
//
// Nothing here carries domain logic.
package shared
