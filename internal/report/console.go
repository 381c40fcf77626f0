package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/wallarm/gotestapi/internal/db"
)

// RenderConsoleReport writes the per-endpoint summary followed by a table
// with verdict totals. Results are printed in the order they were produced.
func RenderConsoleReport(w io.Writer, results []*db.TestResult, s *db.Statistics) error {
	var buffer strings.Builder

	printSummary(&buffer, results)

	fmt.Fprintf(&buffer, "\nTotals:\n")

	table := tablewriter.NewWriter(&buffer)
	table.Header("Total", "Passed", "Failed", "Errors", "Pass rate")
	err := table.Append([]string{
		fmt.Sprintf("%d", s.AllTestsNumber),
		fmt.Sprintf("%d", s.PassedTestsNumber),
		fmt.Sprintf("%d", s.FailedTestsNumber),
		fmt.Sprintf("%d", s.ErroredTestsNumber),
		fmt.Sprintf("%.2f%%", s.PassedTestsPercentage),
	})
	if err != nil {
		return errors.Wrap(err, "couldn't build totals table")
	}

	if err = table.Render(); err != nil {
		return errors.Wrap(err, "couldn't render totals table")
	}

	_, err = io.WriteString(w, buffer.String())
	if err != nil {
		return errors.Wrap(err, "couldn't write console report")
	}

	return nil
}

// printSummary prints one line per endpoint. FAIL results are followed by
// the check outcomes and missing keys, ERROR results by the error message.
func printSummary(w io.Writer, results []*db.TestResult) {
	fmt.Fprintf(w, "\nTest Summary:\n")

	for _, r := range results {
		fmt.Fprintf(w, "Endpoint: %s, Method: %s, Result: %s\n", r.Endpoint, r.Method, r.Verdict)

		switch r.Verdict {
		case db.VerdictFail:
			fmt.Fprintf(w, " - Status Check: %s\n", passOrFail(r.StatusCheck))
			fmt.Fprintf(w, " - Content Check: %s\n", passOrFail(r.ContentCheck))
			if len(r.MissingKeys) > 0 {
				fmt.Fprintf(w, " - Missing Keys: [%s]\n", strings.Join(r.MissingKeys, ", "))
			}

		case db.VerdictError:
			fmt.Fprintf(w, " - Error: %s\n", r.Error)
		}
	}
}

func passOrFail(ok bool) string {
	if ok {
		return "Pass"
	}

	return "Fail"
}
