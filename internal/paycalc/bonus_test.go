package paycalc_test

import (
	"testing"
	"time"

	"go-paie/internal/paycalc"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestBonusAssignment_EligibleOn(t *testing.T) {
	firstOfMonth := date(2025, time.March, 1)

	tests := []struct {
		name string
		in   paycalc.BonusAssignment
		want bool
	}{
		{
			name: "monthly, open ended",
			in:   paycalc.BonusAssignment{Frequency: paycalc.FrequencyMonthly, StartDate: date(2024, time.January, 1)},
			want: true,
		},
		{
			name: "starts on the first of the month",
			in:   paycalc.BonusAssignment{Frequency: paycalc.FrequencyMonthly, StartDate: firstOfMonth},
			want: true,
		},
		{
			name: "starts later in the month",
			in:   paycalc.BonusAssignment{Frequency: paycalc.FrequencyMonthly, StartDate: date(2025, time.March, 2)},
			want: false,
		},
		{
			name: "ends on the first of the month",
			in:   paycalc.BonusAssignment{Frequency: paycalc.FrequencyMonthly, StartDate: date(2024, time.January, 1), EndDate: datePtr(2025, time.March, 1)},
			want: true,
		},
		{
			name: "ended the previous month",
			in:   paycalc.BonusAssignment{Frequency: paycalc.FrequencyMonthly, StartDate: date(2024, time.January, 1), EndDate: datePtr(2025, time.February, 28)},
			want: false,
		},
		{
			name: "one-off bonus",
			in:   paycalc.BonusAssignment{Frequency: paycalc.FrequencyPonctuelle, StartDate: date(2024, time.January, 1)},
			want: false,
		},
		{
			name: "start stored with a clock time on the same day",
			in:   paycalc.BonusAssignment{Frequency: paycalc.FrequencyMonthly, StartDate: time.Date(2025, time.March, 1, 14, 30, 0, 0, time.UTC)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.EligibleOn(firstOfMonth))
		})
	}
}

func TestBonusAssignment_Resolve(t *testing.T) {
	wage := dec("80000")

	tests := []struct {
		name string
		in   paycalc.BonusAssignment
		want string
	}{
		{"override wins over definition", paycalc.BonusAssignment{Amount: decPtr("7000"), DefinitionAmount: decPtr("5000")}, "7000"},
		{"fixed definition amount", paycalc.BonusAssignment{DefinitionAmount: decPtr("5000")}, "5000"},
		{"percentage of base wage", paycalc.BonusAssignment{DefinitionPercentage: decPtr("12.5")}, "10000"},
		{"nothing configured", paycalc.BonusAssignment{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDec(t, tt.want, tt.in.Resolve(wage), "amount")
		})
	}
}

func TestResolveBonuses_AndGross(t *testing.T) {
	firstOfMonth := date(2025, time.March, 1)
	assignments := []paycalc.BonusAssignment{
		{Name: "Panier", Frequency: paycalc.FrequencyMonthly, StartDate: date(2024, time.January, 1), DefinitionAmount: decPtr("15000")},
		{Name: "Rendement", Frequency: paycalc.FrequencyMonthly, StartDate: date(2024, time.January, 1), DefinitionPercentage: decPtr("25")},
		{Name: "Fin d'année", Frequency: paycalc.FrequencyPonctuelle, StartDate: date(2024, time.January, 1), Amount: decPtr("50000")},
		{Name: "Vide", Frequency: paycalc.FrequencyMonthly, StartDate: date(2024, time.January, 1)},
	}

	resolved := paycalc.ResolveBonuses(assignments, dec("100000"), firstOfMonth)
	total, gross := paycalc.GrossSalary(dec("100000"), resolved)

	assert.Len(t, resolved, 3)
	assertDec(t, "40000", total, "bonus total")
	assertDec(t, "140000", gross, "gross")
}
