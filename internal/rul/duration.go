package rul

import "math"

// 換算定数（暦日ではなく固定近似）
const (
	HoursPerStep  = 12
	HoursPerDay   = 24
	DaysPerMonth  = 30
	DaysPerYear   = 365
	MonthsPerYear = 12
)

// MaxSteps は分解できるステップ数の上限。これを超える値は上限に丸め、Years が int に収まるようにする。
const MaxSteps = math.MaxInt32 * DaysPerYear * HoursPerDay / HoursPerStep

// Duration は RUL を年・月・日・時間に分解した値。
// 各要素は上位単位を取り出した後の余りで、Hours は丸めにより 24 になりうる。
type Duration struct {
	Years  int `json:"years" yaml:"years"`
	Months int `json:"months" yaml:"months"`
	Days   int `json:"days" yaml:"days"`
	Hours  int `json:"hours" yaml:"hours"`
}

// IsZero は全要素が 0 かを返す。
func (d Duration) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Days == 0 && d.Hours == 0
}

// TotalHours は分解前と同じ換算定数で合計時間に戻す。
func (d Duration) TotalHours() int {
	return d.Years*DaysPerYear*HoursPerDay +
		d.Months*DaysPerMonth*HoursPerDay +
		d.Days*HoursPerDay +
		d.Hours
}

// Decompose はステップ数で表された RUL を Duration に分解する。
// NaN、無限大、負の値は 0 として扱い、MaxSteps を超える値は MaxSteps に丸める。
//
// 端数時間は四捨五入するため Hours が 24 になることがあるが、Days には繰り上げない。
func Decompose(steps float64) Duration {
	if math.IsNaN(steps) || math.IsInf(steps, 0) || steps < 0 {
		steps = 0
	}
	if steps > MaxSteps {
		steps = MaxSteps
	}

	totalHours := steps * HoursPerStep
	totalDays := totalHours / HoursPerDay

	// 商は剰余から求め、浮動小数点の丸めで商と剰余が食い違わないようにする
	rem := math.Mod(totalDays, DaysPerYear)
	years := math.Round((totalDays - rem) / DaysPerYear)

	monthRem := math.Mod(rem, DaysPerMonth)
	months := math.Round((rem - monthRem) / DaysPerMonth)
	rem = monthRem

	days := math.Floor(rem)
	hours := math.Floor((rem-days)*HoursPerDay + 0.5)

	return Duration{
		Years:  int(years),
		Months: int(months),
		Days:   int(days),
		Hours:  int(hours),
	}
}
