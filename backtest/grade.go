package backtest

// Grade is the letter grade of a backtest derived from its MAPE
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeF Grade = "F"
)

// Quality buckets grades for display
type Quality string

const (
	QualityGood Quality = "good"
	QualityOK   Quality = "ok"
	QualityBad  Quality = "bad"
)

const (
	GradeAMaxMAPE = 5.0
	GradeBMaxMAPE = 10.0
	GradeCMaxMAPE = 15.0
)

// GradeMAPE maps a MAPE in percent to a grade. Each bound is exclusive so a MAPE of exactly
// 5 is a B.
func GradeMAPE(mape float64) Grade {
	switch {
	case mape < GradeAMaxMAPE:
		return GradeA
	case mape < GradeBMaxMAPE:
		return GradeB
	case mape < GradeCMaxMAPE:
		return GradeC
	default:
		return GradeF
	}
}

// Quality returns the display bucket of the grade
func (g Grade) Quality() Quality {
	switch g {
	case GradeA:
		return QualityGood
	case GradeB, GradeC:
		return QualityOK
	default:
		return QualityBad
	}
}
