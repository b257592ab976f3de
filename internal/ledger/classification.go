// Package ledger holds the chart-of-accounts vocabulary and the business
// rules that map transaction classifications onto register sides and
// cash-flow activity groups.
package ledger

type Classification string

const (
	ClassificationIncome   Classification = "income"
	ClassificationExpense  Classification = "expense"
	ClassificationAsset    Classification = "asset"
	ClassificationTransfer Classification = "transfer"
)

// Side is the register column an amount lands in.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// classificationSides is the single source of truth for how a flat
// transaction amount is split into a debit or credit register column.
// Expense and asset purchases consume cash (debit); income and transfers
// are recorded as credits.
var classificationSides = map[Classification]Side{
	ClassificationIncome:   SideCredit,
	ClassificationExpense:  SideDebit,
	ClassificationAsset:    SideDebit,
	ClassificationTransfer: SideCredit,
}

// SideOf returns the register side for a classification. Unknown
// classifications fall back to credit, matching the register's
// "everything that is not an outflow" default.
func SideOf(c Classification) Side {
	if side, ok := classificationSides[c]; ok {
		return side
	}
	return SideCredit
}

// Valid reports whether c is one of the four known classifications.
func (c Classification) Valid() bool {
	_, ok := classificationSides[c]
	return ok
}

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// ActivityGroup is the cash-flow statement grouping dimension carried by
// categories. It is independent of the income/expense account type.
type ActivityGroup string

const (
	ActivityOperating ActivityGroup = "operating"
	ActivityInvesting ActivityGroup = "investing"
	ActivityFinancing ActivityGroup = "financing"
)

// ActivityGroups lists the groups in statement order.
var ActivityGroups = []ActivityGroup{ActivityOperating, ActivityInvesting, ActivityFinancing}
