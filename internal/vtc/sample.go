package vtc

// SampleTransactions returns a demo month of planned transactions for a
// freshly relocated household. Used by the CLI when the configuration does
// not supply its own transaction list.
func SampleTransactions() []Transaction {
	return []Transaction{
		{Description: "Monthly Rent", Amount: 1200, Category: CategoryHousing, Location: LocationInternational},
		{Description: "Grocery Store", Amount: 85, Category: CategoryGroceries, Location: LocationInternational},
		{Description: "Metro Pass", Amount: 86, Category: CategoryTransport, Location: LocationInternational},
		{Description: "Restaurant Dinner", Amount: 65, Category: CategoryDining, Location: LocationInternational},
		{Description: "Laptop Purchase", Amount: 1200, Category: CategoryElectronics, Location: LocationInternational},
		{Description: "Utility Bills", Amount: 180, Category: CategoryUtilities, Location: LocationInternational},
		{Description: "ATM Withdrawal", Amount: 200, Category: CategoryATM, Location: LocationInternational},
		{Description: "Online Course", Amount: 150, Category: CategoryEducation, Location: LocationDomestic},
		{Description: "Health Insurance", Amount: 250, Category: CategoryHealthcare, Location: LocationInternational},
		{Description: "Weekend Trip", Amount: 450, Category: CategoryTravel, Location: LocationInternational},
	}
}
