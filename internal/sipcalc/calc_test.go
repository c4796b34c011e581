package sipcalc

import (
	"math"
	"testing"
)

func TestCalculateFutureValue(t *testing.T) {
	result := Calculate(Input{MonthlyAmount: 5000, ExpectedReturn: 12, TimePeriod: 10})
	calc := result.Calculation

	if calc.TotalMonths != 120 {
		t.Fatalf("expected 120 months, got %d", calc.TotalMonths)
	}
	if calc.TotalInvested != 600000 {
		t.Fatalf("expected total invested 600000, got %v", calc.TotalInvested)
	}

	// FV = P * [((1+r)^n - 1) / r] * (1+r) with r = 0.01, n = 120.
	r := 0.01
	want := 5000 * ((math.Pow(1+r, 120) - 1) / r) * (1 + r)
	if math.Abs(calc.FutureValue-want) > 0.01 {
		t.Fatalf("expected future value %.2f, got %v", want, calc.FutureValue)
	}
	if math.Abs(calc.TotalReturns-(calc.FutureValue-calc.TotalInvested)) > 0.01 {
		t.Fatalf("returns must equal value minus invested, got %+v", calc)
	}
	if calc.ReturnPercentage <= 0 {
		t.Fatalf("expected positive return percentage, got %v", calc.ReturnPercentage)
	}
}

func TestCalculateZeroRateDegeneratesToSum(t *testing.T) {
	result := Calculate(Input{MonthlyAmount: 1000, ExpectedReturn: 0, TimePeriod: 2})
	calc := result.Calculation

	if calc.FutureValue != 24000 || calc.TotalInvested != 24000 {
		t.Fatalf("expected plain sum of payments, got %+v", calc)
	}
	if calc.TotalReturns != 0 || calc.ReturnPercentage != 0 {
		t.Fatalf("expected zero returns at zero rate, got %+v", calc)
	}
}

func TestProjectionCurveMonthlyForShortPlans(t *testing.T) {
	result := Calculate(Input{MonthlyAmount: 1000, ExpectedReturn: 10, TimePeriod: 2})
	curve := result.ProjectionCurve

	if len(curve) != 25 {
		t.Fatalf("expected 25 monthly points for 24 months, got %d", len(curve))
	}
	if curve[0].Month != 0 || curve[0].Value != 0 || curve[0].Invested != 0 {
		t.Fatalf("expected zero initial point, got %+v", curve[0])
	}
	if curve[1].Month != 1 || curve[24].Month != 24 {
		t.Fatalf("expected monthly steps, got first=%d last=%d", curve[1].Month, curve[24].Month)
	}
}

func TestProjectionCurveSampledForLongPlans(t *testing.T) {
	result := Calculate(Input{MonthlyAmount: 1000, ExpectedReturn: 10, TimePeriod: 10})
	curve := result.ProjectionCurve

	if curve[1].Month != 3 {
		t.Fatalf("expected 3-month sampling past 60 months, got %d", curve[1].Month)
	}
	if curve[len(curve)-1].Month != 120 {
		t.Fatalf("expected final month present, got %d", curve[len(curve)-1].Month)
	}
}

func TestProjectionCurveAlwaysEndsAtFinalMonth(t *testing.T) {
	// 112 months is not on the 3-month sampling grid.
	result := Calculate(Input{MonthlyAmount: 1000, ExpectedReturn: 8, TimePeriod: 9.34})
	curve := result.ProjectionCurve

	last := curve[len(curve)-1]
	if last.Month != 112 {
		t.Fatalf("expected final month 112 appended, got %d", last.Month)
	}
	secondLast := curve[len(curve)-2]
	if secondLast.Month != 111 {
		t.Fatalf("expected last sampled step 111, got %d", secondLast.Month)
	}
}

func TestProjectionCurveMonotonic(t *testing.T) {
	result := Calculate(Input{MonthlyAmount: 2000, ExpectedReturn: 12, TimePeriod: 5})
	curve := result.ProjectionCurve

	for i := 1; i < len(curve); i++ {
		if curve[i].Value < curve[i-1].Value || curve[i].Invested < curve[i-1].Invested {
			t.Fatalf("curve must be monotonic, dropped at %d: %+v -> %+v", i, curve[i-1], curve[i])
		}
		if curve[i].Returns < -0.01 {
			t.Fatalf("returns must not be negative at positive rate: %+v", curve[i])
		}
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantField string
	}{
		{name: "zero amount", in: Input{MonthlyAmount: 0, ExpectedReturn: 10, TimePeriod: 1}, wantField: "monthly_amount"},
		{name: "negative amount", in: Input{MonthlyAmount: -5, ExpectedReturn: 10, TimePeriod: 1}, wantField: "monthly_amount"},
		{name: "negative return", in: Input{MonthlyAmount: 100, ExpectedReturn: -1, TimePeriod: 1}, wantField: "expected_return"},
		{name: "return above 100", in: Input{MonthlyAmount: 100, ExpectedReturn: 101, TimePeriod: 1}, wantField: "expected_return"},
		{name: "zero period", in: Input{MonthlyAmount: 100, ExpectedReturn: 10, TimePeriod: 0}, wantField: "time_period"},
		{name: "period above 100 years", in: Input{MonthlyAmount: 100, ExpectedReturn: 10, TimePeriod: 101}, wantField: "time_period"},
		{name: "absurd period", in: Input{MonthlyAmount: 1000, ExpectedReturn: 0, TimePeriod: 1e30}, wantField: "time_period"},
		{name: "infinite period", in: Input{MonthlyAmount: 100, ExpectedReturn: 10, TimePeriod: math.Inf(1)}, wantField: "time_period"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fieldErrs := Validate(tc.in)
			if len(fieldErrs) == 0 || fieldErrs[0].Field != tc.wantField {
				t.Fatalf("expected %s error, got %+v", tc.wantField, fieldErrs)
			}
		})
	}

	if fieldErrs := Validate(Input{MonthlyAmount: 100, ExpectedReturn: 0, TimePeriod: 1}); len(fieldErrs) != 0 {
		t.Fatalf("zero return rate is valid, got %+v", fieldErrs)
	}
}

func TestCalculateAtMaxPeriod(t *testing.T) {
	in := Input{MonthlyAmount: 1000, ExpectedReturn: 8, TimePeriod: 100}
	if fieldErrs := Validate(in); len(fieldErrs) != 0 {
		t.Fatalf("100 years is within bounds, got %+v", fieldErrs)
	}

	result := Calculate(in)
	if result.Calculation.TotalMonths != 1200 {
		t.Fatalf("expected 1200 months, got %d", result.Calculation.TotalMonths)
	}
	curve := result.ProjectionCurve
	if len(curve) == 0 || curve[len(curve)-1].Month != 1200 {
		t.Fatalf("expected curve ending at month 1200, got %d points", len(curve))
	}
}
