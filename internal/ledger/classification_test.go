package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideOf(t *testing.T) {
	assert.Equal(t, SideDebit, SideOf(ClassificationExpense))
	assert.Equal(t, SideDebit, SideOf(ClassificationAsset))
	assert.Equal(t, SideCredit, SideOf(ClassificationIncome))
	assert.Equal(t, SideCredit, SideOf(ClassificationTransfer))
	assert.Equal(t, SideCredit, SideOf(Classification("refund")))
}

func TestClassificationValid(t *testing.T) {
	assert.True(t, ClassificationIncome.Valid())
	assert.True(t, ClassificationTransfer.Valid())
	assert.False(t, Classification("").Valid())
	assert.False(t, Classification("INCOME").Valid())
}

func TestAccountTypeValid(t *testing.T) {
	assert.True(t, AccountTypeLiability.Valid())
	assert.False(t, AccountType("bank").Valid())
}
