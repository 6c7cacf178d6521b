// Package analytics contains the read-only derivation engine: pure functions
// computing aggregates over the transaction history. Derivations are
// recomputed on every read and are total over empty input.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytree/backend/internal/domain/entity"
)

// Fixed divisors over a nominal month, kept rather than elapsed-time math.
var (
	weeklyAverageDivisor = decimal.NewFromInt(4)
	dailyBurnDivisor     = decimal.NewFromInt(30)
)

// CategoryTotal pairs a category with its summed expense amount.
type CategoryTotal struct {
	Category entity.Category
	Total    decimal.Decimal
}

// SocialSplit breaks total expenses into shared and solo spending.
type SocialSplit struct {
	Social     decimal.Decimal
	Solo       decimal.Decimal
	Percentage int
}

// DayTotal is one day of the spending trend.
type DayTotal struct {
	Label string
	Date  time.Time
	Total decimal.Decimal
}

// TotalExpense sums the amounts of all expense transactions.
func TotalExpense(transactions []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// CategoryTotals sums expense amounts per category in canonical order.
// Categories with a zero sum are excluded from the distribution.
func CategoryTotals(transactions []entity.Transaction) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(entity.Categories()))
	for _, category := range entity.Categories() {
		total := categoryExpense(transactions, category)
		if total.IsZero() {
			continue
		}
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	return totals
}

// CategoryProfile sums expense amounts per expense category, including zero
// entries, in canonical order. This is the radar-view variant of
// CategoryTotals.
func CategoryProfile(transactions []entity.Transaction) []CategoryTotal {
	profile := make([]CategoryTotal, 0, len(entity.ExpenseCategories()))
	for _, category := range entity.ExpenseCategories() {
		profile = append(profile, CategoryTotal{
			Category: category,
			Total:    categoryExpense(transactions, category),
		})
	}
	return profile
}

// TopCategory returns the category with the largest expense total. The second
// return value is false when no expenses exist.
func TopCategory(transactions []entity.Transaction) (entity.Category, bool) {
	totals := CategoryTotals(transactions)
	if len(totals) == 0 {
		return "", false
	}
	top := totals[0]
	for _, ct := range totals[1:] {
		if ct.Total.GreaterThan(top.Total) {
			top = ct
		}
	}
	return top.Category, true
}

// SplitSocial divides total expense spending into shared and solo buckets.
// The percentage is 0 when there are no expenses.
func SplitSocial(transactions []entity.Transaction) SocialSplit {
	social := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense && t.IsForFriends {
			social = social.Add(t.Amount)
		}
	}

	total := TotalExpense(transactions)
	split := SocialSplit{
		Social: social,
		Solo:   total.Sub(social),
	}
	if total.IsPositive() {
		split.Percentage = int(social.Mul(decimal.NewFromInt(100)).Div(total).Round(0).IntPart())
	}
	return split
}

// Trend produces exactly days entries, one per calendar day ending today
// inclusive, oldest first. Each entry sums expense amounts whose timestamp
// falls on that calendar day in now's location.
func Trend(transactions []entity.Transaction, now time.Time, days int) []DayTotal {
	trend := make([]DayTotal, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		trend = append(trend, DayTotal{
			Label: day.Format("Mon"),
			Date:  day,
			Total: SpendOn(transactions, day),
		})
	}
	return trend
}

// SpendOn sums expense amounts whose timestamp shares day's calendar date.
func SpendOn(transactions []entity.Transaction, day time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense && sameCalendarDay(t.Timestamp, day) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// AvailableCash is the projected surplus against the allowance, floored at zero.
func AvailableCash(allowance, totalExpense decimal.Decimal) decimal.Decimal {
	surplus := allowance.Sub(totalExpense)
	if surplus.IsNegative() {
		return decimal.Zero
	}
	return surplus
}

// WeeklyAverage approximates per-week spending over a nominal 4-week month.
func WeeklyAverage(totalExpense decimal.Decimal) decimal.Decimal {
	return totalExpense.Div(weeklyAverageDivisor)
}

// DailyBurn approximates per-day spending over a nominal 30-day month.
func DailyBurn(totalExpense decimal.Decimal) decimal.Decimal {
	return totalExpense.Div(dailyBurnDivisor)
}

func categoryExpense(transactions []entity.Transaction, category entity.Category) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense && t.Category == category {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// sameCalendarDay compares calendar dates in ref's location, not a rolling
// 24h window.
func sameCalendarDay(t, ref time.Time) bool {
	y1, m1, d1 := t.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
