package db

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestStatistics(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property(
		"testPropertyCountersSumUp",
		prop.ForAllNoShrink(
			testPropertyCountersSumUp,
			GenResultSlice()))
	properties.Property(
		"testPropertyPercentageInRange",
		prop.ForAllNoShrink(
			testPropertyPercentageInRange,
			GenResultSlice()))
	properties.Property(
		"testPropertyAllPassed",
		prop.ForAllNoShrink(
			testPropertyAllPassed,
			GenResultSlice()))

	properties.TestingRun(t)
}

func testPropertyCountersSumUp(results []*TestResult) bool {
	db := &DB{Hash: "fp"}
	stat := db.GetStatistics(results)

	if stat.AllTestsNumber != len(results) {
		return false
	}

	sum := stat.PassedTestsNumber + stat.FailedTestsNumber + stat.ErroredTestsNumber

	return sum == stat.AllTestsNumber && stat.EndpointsFingerprint == "fp"
}

func testPropertyPercentageInRange(results []*TestResult) bool {
	db := &DB{}
	stat := db.GetStatistics(results)

	return stat.PassedTestsPercentage >= 0 && stat.PassedTestsPercentage <= 100
}

func testPropertyAllPassed(results []*TestResult) bool {
	db := &DB{}
	stat := db.GetStatistics(results)

	expected := len(results) > 0
	for _, r := range results {
		if r.Verdict != VerdictPass {
			expected = false
		}
	}

	return stat.AllPassed() == expected
}

func GenVerdict() gopter.Gen {
	return gen.OneConstOf(VerdictPass, VerdictFail, VerdictError)
}

func GenEndpointPath() gopter.Gen {
	return func(parameters *gopter.GenParameters) *gopter.GenResult {
		path := fmt.Sprintf("/path-%d", parameters.Rng.Intn(10))
		return gopter.NewGenResult(path, gopter.NoShrinker)
	}
}

func GenTestResult() gopter.Gen {
	return gopter.DeriveGen(
		func(path string, verdict Verdict) *TestResult {
			return &TestResult{
				Endpoint: path,
				Method:   MethodGet.String(),
				Verdict:  verdict,
			}
		},
		func(r *TestResult) (string, Verdict) {
			return r.Endpoint, r.Verdict
		},
		GenEndpointPath(),
		GenVerdict(),
	)
}

func GenResultSlice() gopter.Gen {
	return gen.SliceOf(GenTestResult())
}

func TestStatisticsEmpty(t *testing.T) {
	db := &DB{}
	stat := db.GetStatistics(nil)

	if stat.AllTestsNumber != 0 || stat.PassedTestsPercentage != 0 {
		t.Fatalf("got %+v, want empty statistics", stat)
	}

	if stat.AllPassed() {
		t.Fatalf("an empty run must not be reported as passed")
	}
}
