package db

type Statistics struct {
	EndpointsFingerprint string

	AllTestsNumber     int
	PassedTestsNumber  int
	FailedTestsNumber  int
	ErroredTestsNumber int

	PassedTestsPercentage float64
}

// GetStatistics counts verdicts of a finished run.
func (db *DB) GetStatistics(results []*TestResult) *Statistics {
	s := &Statistics{
		EndpointsFingerprint: db.Hash,
	}

	for _, r := range results {
		s.AllTestsNumber++

		switch r.Verdict {
		case VerdictPass:
			s.PassedTestsNumber++
		case VerdictFail:
			s.FailedTestsNumber++
		case VerdictError:
			s.ErroredTestsNumber++
		}
	}

	s.PassedTestsPercentage = CalculatePercentage(s.PassedTestsNumber, s.AllTestsNumber)

	return s
}

// AllPassed reports whether every test got the PASS verdict.
func (s *Statistics) AllPassed() bool {
	return s.AllTestsNumber > 0 && s.PassedTestsNumber == s.AllTestsNumber
}
