// Command registry-demo runs the reference scenarios against both
// registry variants and prints the resulting matching sizes.
package main

import (
	"fmt"

	registry "github.com/0x5487/order-registry"
)

type orderRow struct {
	id, security, side string
	qty                int64
	user, company      string
}

var example1 = []orderRow{
	{"OrdId1", "SecId1", "Buy", 1000, "User1", "CompanyA"},
	{"OrdId2", "SecId2", "Sell", 3000, "User2", "CompanyB"},
	{"OrdId3", "SecId1", "Sell", 500, "User3", "CompanyA"},
	{"OrdId4", "SecId2", "Buy", 600, "User4", "CompanyC"},
	{"OrdId5", "SecId2", "Buy", 100, "User5", "CompanyB"},
	{"OrdId6", "SecId3", "Buy", 1000, "User6", "CompanyD"},
	{"OrdId7", "SecId2", "Buy", 2000, "User7", "CompanyE"},
	{"OrdId8", "SecId2", "Sell", 5000, "User8", "CompanyE"},
}

var example2 = []orderRow{
	{"OrdId1", "SecId1", "Sell", 100, "User10", "Company2"},
	{"OrdId2", "SecId3", "Sell", 200, "User8", "Company2"},
	{"OrdId3", "SecId1", "Buy", 300, "User13", "Company2"},
	{"OrdId4", "SecId2", "Sell", 400, "User12", "Company2"},
	{"OrdId5", "SecId3", "Sell", 500, "User7", "Company2"},
	{"OrdId6", "SecId3", "Buy", 600, "User3", "Company1"},
	{"OrdId7", "SecId1", "Sell", 700, "User10", "Company2"},
	{"OrdId8", "SecId1", "Sell", 800, "User2", "Company1"},
	{"OrdId9", "SecId2", "Buy", 900, "User6", "Company2"},
	{"OrdId10", "SecId2", "Sell", 1000, "User5", "Company1"},
	{"OrdId11", "SecId1", "Sell", 1100, "User13", "Company2"},
	{"OrdId12", "SecId2", "Buy", 1200, "User9", "Company2"},
	{"OrdId13", "SecId1", "Sell", 1300, "User1", "Company1"},
}

var example3 = []orderRow{
	{"OrdId1", "SecId3", "Sell", 100, "User1", "Company1"},
	{"OrdId2", "SecId3", "Sell", 200, "User3", "Company2"},
	{"OrdId3", "SecId1", "Buy", 300, "User2", "Company1"},
	{"OrdId4", "SecId3", "Sell", 400, "User5", "Company2"},
	{"OrdId5", "SecId2", "Sell", 500, "User2", "Company1"},
	{"OrdId6", "SecId2", "Buy", 600, "User3", "Company2"},
	{"OrdId7", "SecId2", "Sell", 700, "User1", "Company1"},
	{"OrdId8", "SecId1", "Sell", 800, "User2", "Company1"},
	{"OrdId9", "SecId1", "Buy", 900, "User5", "Company2"},
	{"OrdId10", "SecId1", "Sell", 1000, "User1", "Company1"},
	{"OrdId11", "SecId2", "Sell", 1100, "User6", "Company2"},
}

func fill(reg *registry.ConcurrentRegistry, rows []orderRow) {
	for _, row := range rows {
		order := registry.NewOrder(row.id, row.security, row.side, row.qty, row.user, row.company)
		if err := reg.AddOrder(order); err != nil {
			fmt.Printf("add %s: %v\n", row.id, err)
		}
	}
}

func printMatching(reg *registry.ConcurrentRegistry) {
	for _, securityID := range []string{"SecId1", "SecId2", "SecId3"} {
		fmt.Printf("matching size for %s: %d\n", securityID, reg.MatchingSizeForSecurity(securityID))
	}
}

func main() {
	fmt.Println("=== Example 1 ===")
	reg := registry.NewConcurrent()
	fill(reg, example1)
	printMatching(reg)

	fmt.Printf("orders before CancelOrdersForUser(User2): %d\n", reg.Len())
	reg.CancelOrdersForUser("User2")
	fmt.Printf("orders after CancelOrdersForUser(User2): %d\n", reg.Len())

	reg.CancelOrdersForSecurityWithMinQty("SecId2", 2000)
	fmt.Printf("orders after CancelOrdersForSecurityWithMinQty(SecId2, 2000): %d\n", reg.Len())

	fmt.Println("\n=== Example 2 ===")
	reg = registry.NewConcurrent()
	fill(reg, example2)
	printMatching(reg)

	fmt.Println("\n=== Example 3 ===")
	reg = registry.NewConcurrent()
	fill(reg, example3)
	printMatching(reg)

	fmt.Println("\nsummary for example 3:")
	for _, s := range reg.Summary() {
		fmt.Printf("%s buy=%d sell=%d matchable=%d\n", s.SecurityID, s.BuyQty, s.SellQty, s.Matchable)
	}
}
