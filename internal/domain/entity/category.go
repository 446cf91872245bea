// Package entity defines the core business entities for the domain layer.
package entity

// Category names. Income and expense categories are disjoint.
const (
	CategorySalary        = "Salário"
	CategoryFreelance     = "Freelance"
	CategoryInvestments   = "Investimentos"
	CategoryOtherIncome   = "Outros Rendimentos"
	CategoryFood          = "Alimentação"
	CategoryHousing       = "Moradia"
	CategoryTransport     = "Transporte"
	CategoryHealth        = "Saúde"
	CategoryEducation     = "Educação"
	CategoryLeisure       = "Lazer"
	CategoryClothing      = "Roupas"
	CategoryTechnology    = "Tecnologia"
	CategoryInsurance     = "Seguros"
	CategoryTaxes         = "Impostos"
	CategoryOtherExpenses = "Outros Gastos"
)

// Category is an entry of the fixed category table.
type Category struct {
	Name string
	Type TransactionType
}

// categoryTable lists every category in display order, income first.
var categoryTable = []Category{
	{Name: CategorySalary, Type: TransactionTypeIncome},
	{Name: CategoryFreelance, Type: TransactionTypeIncome},
	{Name: CategoryInvestments, Type: TransactionTypeIncome},
	{Name: CategoryOtherIncome, Type: TransactionTypeIncome},
	{Name: CategoryFood, Type: TransactionTypeExpense},
	{Name: CategoryHousing, Type: TransactionTypeExpense},
	{Name: CategoryTransport, Type: TransactionTypeExpense},
	{Name: CategoryHealth, Type: TransactionTypeExpense},
	{Name: CategoryEducation, Type: TransactionTypeExpense},
	{Name: CategoryLeisure, Type: TransactionTypeExpense},
	{Name: CategoryClothing, Type: TransactionTypeExpense},
	{Name: CategoryTechnology, Type: TransactionTypeExpense},
	{Name: CategoryInsurance, Type: TransactionTypeExpense},
	{Name: CategoryTaxes, Type: TransactionTypeExpense},
	{Name: CategoryOtherExpenses, Type: TransactionTypeExpense},
}

var categoryTypes = func() map[string]TransactionType {
	m := make(map[string]TransactionType, len(categoryTable))
	for _, c := range categoryTable {
		m[c.Name] = c.Type
	}
	return m
}()

// Categories returns the category table in display order.
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// CategoriesByType returns the categories allowed for the given transaction type.
func CategoriesByType(transactionType TransactionType) []Category {
	out := make([]Category, 0, len(categoryTable))
	for _, c := range categoryTable {
		if c.Type == transactionType {
			out = append(out, c)
		}
	}
	return out
}

// IsKnownCategory reports whether name is in the category table.
func IsKnownCategory(name string) bool {
	_, ok := categoryTypes[name]
	return ok
}

// CategoryAllows reports whether the category exists and accepts transactions of the given type.
func CategoryAllows(name string, transactionType TransactionType) bool {
	t, ok := categoryTypes[name]
	return ok && t == transactionType
}
