package models

// Inflow categories assigned by the upstream statement pipeline
const (
	CategorySalesRevenue   = "sales_revenue"
	CategoryCardSettlement = "card_settlement"
	CategoryMcaFunding     = "mca_funding"
	CategoryTransferIn     = "transfer_in"
	CategoryRefund         = "refund"
	CategoryOtherIncome    = "other_income"
)

// Outflow categories assigned by the upstream statement pipeline
const (
	CategoryRent            = "rent"
	CategoryPayroll         = "payroll"
	CategoryInventory       = "inventory"
	CategoryUtilities       = "utilities"
	CategoryInsurance       = "insurance"
	CategoryLoanPayment     = "loan_payment"
	CategoryMcaPayment      = "mca_payment"
	CategoryOwnerWithdrawal = "owner_withdrawal"
	CategoryNSFFee          = "nsf_fee"
	CategoryOverdraftFee    = "overdraft_fee"
	CategoryBankFee         = "bank_fee"
	CategoryTaxPayment      = "tax_payment"
	CategoryTransferOut     = "transfer_out"
	CategoryOtherExpense    = "other_expense"
)

// InflowCategories returns the fixed inflow vocabulary
func InflowCategories() []string {
	return []string{
		CategorySalesRevenue,
		CategoryCardSettlement,
		CategoryMcaFunding,
		CategoryTransferIn,
		CategoryRefund,
		CategoryOtherIncome,
	}
}

// OutflowCategories returns the fixed outflow vocabulary
func OutflowCategories() []string {
	return []string{
		CategoryRent,
		CategoryPayroll,
		CategoryInventory,
		CategoryUtilities,
		CategoryInsurance,
		CategoryLoanPayment,
		CategoryMcaPayment,
		CategoryOwnerWithdrawal,
		CategoryNSFFee,
		CategoryOverdraftFee,
		CategoryBankFee,
		CategoryTaxPayment,
		CategoryTransferOut,
		CategoryOtherExpense,
	}
}

// IsInflowCategory checks membership in the inflow vocabulary
func IsInflowCategory(category string) bool {
	for _, c := range InflowCategories() {
		if category == c {
			return true
		}
	}
	return false
}

// IsOutflowCategory checks membership in the outflow vocabulary
func IsOutflowCategory(category string) bool {
	for _, c := range OutflowCategories() {
		if category == c {
			return true
		}
	}
	return false
}

// NormalizeInflowCategory maps an arbitrary category label onto the inflow
// vocabulary. Labels outside the vocabulary land in the other_income
// catch-all so aggregation never drops a credit.
func NormalizeInflowCategory(category string) string {
	if IsInflowCategory(category) {
		return category
	}
	return CategoryOtherIncome
}

// NormalizeOutflowCategory maps an arbitrary category label onto the outflow
// vocabulary, with other_expense as the catch-all.
func NormalizeOutflowCategory(category string) string {
	if IsOutflowCategory(category) {
		return category
	}
	return CategoryOtherExpense
}
