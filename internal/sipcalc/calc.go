// Package sipcalc computes systematic investment plan projections.
package sipcalc

import "math"

// Input bounds checked before calculation.
const (
	minExpectedReturn = 0
	maxExpectedReturn = 100
	maxTimePeriod     = 100
)

// Projection curves for long plans sample every 3 months past this point.
const sampleThresholdMonths = 60

// Input is the SIP calculation request.
type Input struct {
	MonthlyAmount  float64 `json:"monthly_amount"`
	ExpectedReturn float64 `json:"expected_return"`
	TimePeriod     float64 `json:"time_period"`
}

// Calculation is the computed SIP outcome.
type Calculation struct {
	FutureValue      float64 `json:"future_value"`
	TotalInvested    float64 `json:"total_invested"`
	TotalReturns     float64 `json:"total_returns"`
	ReturnPercentage float64 `json:"return_percentage"`
	MonthlyAmount    float64 `json:"monthly_amount"`
	AnnualReturn     float64 `json:"annual_return"`
	TimePeriod       float64 `json:"time_period"`
	TotalMonths      int     `json:"total_months"`
}

// CurvePoint is one projection sample.
type CurvePoint struct {
	Month    int     `json:"month"`
	Invested float64 `json:"invested"`
	Value    float64 `json:"value"`
	Returns  float64 `json:"returns"`
}

// Result is the full SIP response body.
type Result struct {
	Status          string       `json:"status"`
	Calculation     Calculation  `json:"calculation"`
	ProjectionCurve []CurvePoint `json:"projection_curve"`
}

// FieldError describes an input bound violation.
type FieldError struct {
	Field string
	Issue string
}

// Validate checks the calculation input bounds.
func Validate(in Input) []FieldError {
	var fieldErrs []FieldError
	if in.MonthlyAmount <= 0 || math.IsNaN(in.MonthlyAmount) || math.IsInf(in.MonthlyAmount, 0) {
		fieldErrs = append(fieldErrs, FieldError{Field: "monthly_amount", Issue: "must be greater than 0"})
	}
	if in.ExpectedReturn < minExpectedReturn || in.ExpectedReturn > maxExpectedReturn || math.IsNaN(in.ExpectedReturn) {
		fieldErrs = append(fieldErrs, FieldError{Field: "expected_return", Issue: "must be between 0 and 100"})
	}
	if in.TimePeriod <= 0 || in.TimePeriod > maxTimePeriod || math.IsNaN(in.TimePeriod) {
		fieldErrs = append(fieldErrs, FieldError{Field: "time_period", Issue: "must be between 0 and 100 years"})
	}
	return fieldErrs
}

// Calculate computes the SIP future value and projection curve. The input is
// assumed validated.
func Calculate(in Input) Result {
	monthlyReturn := in.ExpectedReturn / 12 / 100
	totalMonths := int(in.TimePeriod * 12)

	futureValue := valueAtMonth(in.MonthlyAmount, monthlyReturn, totalMonths)
	totalInvested := in.MonthlyAmount * float64(totalMonths)
	totalReturns := futureValue - totalInvested

	returnPercentage := 0.0
	if totalInvested > 0 {
		returnPercentage = totalReturns / totalInvested * 100
	}

	return Result{
		Status: "success",
		Calculation: Calculation{
			FutureValue:      round2(futureValue),
			TotalInvested:    round2(totalInvested),
			TotalReturns:     round2(totalReturns),
			ReturnPercentage: round2(returnPercentage),
			MonthlyAmount:    in.MonthlyAmount,
			AnnualReturn:     in.ExpectedReturn,
			TimePeriod:       in.TimePeriod,
			TotalMonths:      totalMonths,
		},
		ProjectionCurve: projectionCurve(in.MonthlyAmount, monthlyReturn, totalMonths),
	}
}

// valueAtMonth applies FV = P * [((1+r)^n - 1) / r] * (1+r). A zero rate
// degenerates to the plain sum of payments.
func valueAtMonth(monthlyAmount, monthlyReturn float64, months int) float64 {
	if monthlyReturn <= 0 {
		return monthlyAmount * float64(months)
	}
	growth := math.Pow(1+monthlyReturn, float64(months))
	return monthlyAmount * ((growth - 1) / monthlyReturn) * (1 + monthlyReturn)
}

// projectionCurve samples monthly points, every 3 months for plans longer
// than 60 months, and always includes the final month.
func projectionCurve(monthlyAmount, monthlyReturn float64, totalMonths int) []CurvePoint {
	step := 1
	if totalMonths > sampleThresholdMonths {
		step = 3
	}

	curve := make([]CurvePoint, 0, totalMonths/step+2)
	for month := 0; month <= totalMonths; month += step {
		curve = append(curve, curvePoint(monthlyAmount, monthlyReturn, month))
	}
	if totalMonths%step != 0 {
		curve = append(curve, curvePoint(monthlyAmount, monthlyReturn, totalMonths))
	}
	return curve
}

func curvePoint(monthlyAmount, monthlyReturn float64, month int) CurvePoint {
	if month == 0 {
		return CurvePoint{Month: 0}
	}
	invested := monthlyAmount * float64(month)
	value := valueAtMonth(monthlyAmount, monthlyReturn, month)
	return CurvePoint{
		Month:    month,
		Invested: round2(invested),
		Value:    round2(value),
		Returns:  round2(value - invested),
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
