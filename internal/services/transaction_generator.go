package services

import (
	"time"

	"finease-server/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

const expenseShare = 0.75

type transactionGenerator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewTransactionGenerator creates a new seed-data generator
func NewTransactionGenerator() TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(0),
		now:   time.Now,
	}
}

// GenerateTransactions generates count records spread over the past monthsBack months
func (g *transactionGenerator) GenerateTransactions(ownerEmail, ownerName string, count, monthsBack int) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		transactionType := g.GenerateTransactionType()
		category := g.GenerateCategory(transactionType)

		transactions = append(transactions, &models.Transaction{
			Type:        transactionType,
			Category:    category,
			Amount:      g.GenerateAmount(category),
			Date:        g.GenerateDate(monthsBack),
			Description: g.GenerateDescription(category),
			OwnerEmail:  ownerEmail,
			OwnerName:   ownerName,
		})
	}

	return transactions
}

// GenerateTransactionType generates a type with a spending-heavy distribution
func (g *transactionGenerator) GenerateTransactionType() string {
	if g.faker.Float64Range(0, 1) < expenseShare {
		return models.TransactionTypeExpense
	}
	return models.TransactionTypeIncome
}

// GenerateCategory picks a category matching the transaction type
func (g *transactionGenerator) GenerateCategory(transactionType string) string {
	if transactionType == models.TransactionTypeIncome {
		return g.faker.RandomString(models.IncomeCategories)
	}
	return g.faker.RandomString(models.ExpenseCategories)
}

// GenerateAmount generates a realistic amount for the category as a decimal string
func (g *transactionGenerator) GenerateAmount(category string) string {
	minValue, maxValue := amountRange(category)
	amount := g.faker.Float64Range(minValue, maxValue)
	return decimal.NewFromFloat(amount).Round(2).String()
}

func amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		"Home":           {200.00, 2000.00},
		"Food":           {5.00, 150.00},
		"Transportation": {2.00, 80.00},
		"Health":         {10.00, 400.00},
		"Personal":       {5.00, 120.00},
		"Education":      {20.00, 500.00},
		"Technology":     {15.00, 900.00},
		"Entertainment":  {5.00, 100.00},
		"Family":         {10.00, 300.00},
		"Salary":         {1500.00, 6000.00},
		"Pocket Money":   {20.00, 200.00},
		"Business":       {200.00, 3000.00},
		"Tutoring":       {50.00, 400.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 5.00, 200.00
}

// GenerateDate generates an ISO date within the past monthsBack months
func (g *transactionGenerator) GenerateDate(monthsBack int) string {
	if monthsBack < 1 {
		monthsBack = 1
	}

	end := g.now()
	start := end.AddDate(0, -monthsBack, 0)

	return g.faker.DateRange(start, end).Format(models.DateLayout)
}

// GenerateDescription generates a short human note for the record
func (g *transactionGenerator) GenerateDescription(category string) string {
	return category + " - " + g.faker.ProductName()
}
