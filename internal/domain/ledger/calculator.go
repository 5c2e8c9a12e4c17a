package ledger

// Expenses are the operating costs recorded when a trip is completed.
// The zero value means no expense was recorded.
type Expenses struct {
	Fuel         Money `json:"fuel_expense"`
	Toll         Money `json:"toll_expense"`
	DriverSalary Money `json:"driver_salary"`
	Other        Money `json:"other_expense"`
}

// Total returns the sum of the four expense heads
func (e Expenses) Total() Money {
	return ComputeTotalExpense(e.Fuel, e.Toll, e.DriverSalary, e.Other)
}

// ComputeBalance returns the amount still owed. It is negative when the
// advance exceeds the total; callers decide whether that is acceptable.
func ComputeBalance(totalAmount, advance Money) Money {
	return totalAmount - advance
}

// ComputeTotalExpense sums the expense heads
func ComputeTotalExpense(fuel, toll, driverSalary, other Money) Money {
	return fuel + toll + driverSalary + other
}

// ComputeNetProfit returns revenue minus operating expense; may be negative
func ComputeNetProfit(totalAmount, totalExpense Money) Money {
	return totalAmount - totalExpense
}

// Outcome classifies a net profit figure for display
type Outcome string

const (
	OutcomeProfit    Outcome = "profit"
	OutcomeLoss      Outcome = "loss"
	OutcomeBreakEven Outcome = "break_even"
)

// Classify returns the display class of a net profit figure
func Classify(netProfit Money) Outcome {
	switch {
	case netProfit > 0:
		return OutcomeProfit
	case netProfit < 0:
		return OutcomeLoss
	default:
		return OutcomeBreakEven
	}
}

// Summary is the full set of derived figures for one engagement
type Summary struct {
	TotalAmount  Money   `json:"total_amount"`
	Advance      Money   `json:"advance"`
	Balance      Money   `json:"balance"`
	TotalExpense Money   `json:"total_expense"`
	NetProfit    Money   `json:"net_profit"`
	Outcome      Outcome `json:"outcome"`
}

// Preview computes every derived figure from the raw inputs
func Preview(totalAmount, advance Money, expenses Expenses) Summary {
	totalExpense := expenses.Total()
	netProfit := ComputeNetProfit(totalAmount, totalExpense)
	return Summary{
		TotalAmount:  totalAmount,
		Advance:      advance,
		Balance:      ComputeBalance(totalAmount, advance),
		TotalExpense: totalExpense,
		NetProfit:    netProfit,
		Outcome:      Classify(netProfit),
	}
}
