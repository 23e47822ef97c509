package catalog

import "mall-bidding/internal/models"

// Store groups as laid out on the mall home page.
const (
	GroupLuxuryFashion    = "Luxury Fashion Hub"
	GroupSports           = "Sports & Athleisure"
	GroupContemporary     = "Contemporary Fashion"
	GroupSuperDry         = "SuperDry Collection"
	GroupPremiumLifestyle = "Premium Lifestyle"
)

// demoStores is the static inventory for the 25 demo mall stores.
// Phrase order matters for matching ties, so keep it as seeded.
var demoStores = []models.Store{
	{StoreID: "dior", Name: "DIOR Store", Group: GroupLuxuryFashion,
		Inventory: []string{"dress", "black dress", "evening dress", "designer dress", "luxury handbag", "designer handbag", "luxury watch", "designer shoes", "luxury accessories"}},
	{StoreID: "gucci", Name: "GUCCI Store", Group: GroupLuxuryFashion,
		Inventory: []string{"dress", "black dress", "luxury dress", "designer dress", "designer handbag", "luxury handbag", "luxury watch", "designer shoes", "luxury accessories"}},
	{StoreID: "prada", Name: "PRADA Store", Group: GroupLuxuryFashion,
		Inventory: []string{"dress", "black dress", "designer dress", "luxury dress", "designer handbag", "luxury handbag", "designer shoes", "luxury accessories"}},
	{StoreID: "saint-laurent", Name: "SAINT LAURENT Store", Group: GroupLuxuryFashion,
		Inventory: []string{"dress", "black dress", "designer dress", "luxury dress", "designer handbag", "luxury handbag", "designer shoes", "luxury accessories"}},
	{StoreID: "versace", Name: "VERSACE Store", Group: GroupLuxuryFashion,
		Inventory: []string{"dress", "black dress", "designer dress", "luxury dress", "designer handbag", "luxury handbag", "designer shoes", "luxury accessories"}},

	{StoreID: "adidas", Name: "ADIDAS Store", Group: GroupSports,
		Inventory: []string{"wireless headphones", "sports headphones", "running headphones", "bluetooth headphones", "running shoes", "sports shoes", "gym wear", "sports apparel", "athletic accessories"}},
	{StoreID: "nike", Name: "NIKE Store", Group: GroupSports,
		Inventory: []string{"wireless headphones", "sports headphones", "fitness headphones", "bluetooth headphones", "running shoes", "sports shoes", "gym wear", "sports apparel", "athletic accessories"}},
	{StoreID: "puma", Name: "PUMA Store", Group: GroupSports,
		Inventory: []string{"wireless headphones", "sports headphones", "running headphones", "bluetooth headphones", "running shoes", "sports shoes", "gym wear", "sports apparel"}},
	{StoreID: "reebok", Name: "REEBOK Store", Group: GroupSports,
		Inventory: []string{"wireless headphones", "sports headphones", "running headphones", "bluetooth headphones", "running shoes", "sports shoes", "gym wear", "sports apparel"}},
	{StoreID: "new-balance", Name: "NEW BALANCE Store", Group: GroupSports,
		Inventory: []string{"wireless headphones", "sports headphones", "running headphones", "bluetooth headphones", "running shoes", "sports shoes", "gym wear", "sports apparel"}},

	{StoreID: "slogun", Name: "SLOGUN Store", Group: GroupContemporary,
		Inventory: []string{"dress", "casual dress", "party dress", "casual wear", "everyday fashion", "trendy accessories", "fashion accessories"}},
	{StoreID: "yumi-kim", Name: "YUMI KIM Store", Group: GroupContemporary,
		Inventory: []string{"dress", "casual dress", "party dress", "casual wear", "everyday fashion", "trendy accessories", "fashion accessories"}},
	{StoreID: "plainandsimple", Name: "PLAINANDSIMPLE Store", Group: GroupContemporary,
		Inventory: []string{"dress", "casual dress", "party dress", "casual wear", "everyday fashion", "trendy accessories", "fashion accessories"}},
	{StoreID: "tfnc-london", Name: "TFNC LONDON Store", Group: GroupContemporary,
		Inventory: []string{"dress", "casual dress", "party dress", "casual wear", "everyday fashion", "trendy accessories", "fashion accessories"}},
	{StoreID: "cottsbury", Name: "COTTSBURY LTD Store", Group: GroupContemporary,
		Inventory: []string{"dress", "casual dress", "party dress", "casual wear", "everyday fashion", "trendy accessories", "fashion accessories"}},

	{StoreID: "superdry-1", Name: "SuperDry Store #1", Group: GroupSuperDry,
		Inventory: []string{"hoodie", "jacket", "t-shirt", "casual wear", "hoodies", "jackets", "casual clothing"}},
	{StoreID: "superdry-2", Name: "SuperDry Store #2", Group: GroupSuperDry,
		Inventory: []string{"hoodie", "jacket", "t-shirt", "casual wear", "hoodies", "jackets", "casual clothing"}},
	{StoreID: "superdry-3", Name: "SuperDry Store #3", Group: GroupSuperDry,
		Inventory: []string{"hoodie", "jacket", "t-shirt", "casual wear", "hoodies", "jackets", "casual clothing"}},
	{StoreID: "superdry-4", Name: "SuperDry Store #4", Group: GroupSuperDry,
		Inventory: []string{"hoodie", "jacket", "t-shirt", "casual wear", "hoodies", "jackets", "casual clothing"}},
	{StoreID: "superdry-5", Name: "SuperDry Store #5", Group: GroupSuperDry,
		Inventory: []string{"hoodie", "jacket", "t-shirt", "casual wear", "hoodies", "jackets", "casual clothing"}},

	{StoreID: "turnbull-asser", Name: "TURNBULL & ASSER Store", Group: GroupPremiumLifestyle,
		Inventory: []string{"designer jacket", "formal wear", "luxury shoes", "premium accessories", "designer coat", "formal clothing"}},
	{StoreID: "moncler", Name: "MONCLER Store", Group: GroupPremiumLifestyle,
		Inventory: []string{"designer jacket", "designer coat", "luxury jacket", "premium accessories", "luxury shoes", "formal wear"}},
	{StoreID: "alexander-mcqueen", Name: "ALEXANDER MCQUEEN Store", Group: GroupPremiumLifestyle,
		Inventory: []string{"designer jacket", "designer coat", "luxury shoes", "premium accessories", "formal wear", "luxury clothing"}},
	{StoreID: "balenciaga", Name: "BALENCIAGA Store", Group: GroupPremiumLifestyle,
		Inventory: []string{"designer jacket", "designer coat", "luxury shoes", "premium accessories", "formal wear", "luxury clothing"}},
	{StoreID: "bottega-veneta", Name: "BOTTEGA VENETA Store", Group: GroupPremiumLifestyle,
		Inventory: []string{"designer jacket", "designer coat", "luxury shoes", "premium accessories", "formal wear", "luxury clothing"}},
}

// seedAgent pairs an agent name with its starting coin balance.
type seedAgent struct {
	name    string
	storeID string
	coins   int
}

var demoAgents = []seedAgent{
	{"Sophie Laurent", "dior", 5000},
	{"Marco Rossi", "gucci", 4800},
	{"Isabella Ferrari", "prada", 4600},
	{"Antoine Dubois", "saint-laurent", 4400},
	{"Valentina Greco", "versace", 4200},
	{"Hans Mueller", "adidas", 3500},
	{"Michael Johnson", "nike", 3400},
	{"Rudolf Dassler", "puma", 3300},
	{"Joe Foster", "reebok", 3200},
	{"William Riley", "new-balance", 3100},
	{"Rajesh Slogun", "slogun", 2800},
	{"Yumi Tanaka", "yumi-kim", 2700},
	{"Sarah Plain", "plainandsimple", 2600},
	{"Emma London", "tfnc-london", 2500},
	{"James Cottsbury", "cottsbury", 2400},
	{"Julian Dunkerton", "superdry-1", 3000},
	{"James Holder", "superdry-2", 2900},
	{"Sarah Mitchell", "superdry-3", 2800},
	{"David Chen", "superdry-4", 2700},
	{"Lisa Thompson", "superdry-5", 2600},
	{"Charles Turnbull", "turnbull-asser", 4000},
	{"Remo Ruffini", "moncler", 3900},
	{"Sarah Burton", "alexander-mcqueen", 3800},
	{"Demna Gvasalia", "balenciaga", 3700},
	{"Matthieu Blazy", "bottega-veneta", 3600},
}

// Stores returns the static 25-store demo catalog.
func Stores() []models.Store {
	return append([]models.Store(nil), demoStores...)
}

// SeedAgents returns the demo agent roster, one agent per store. The
// agent identifier equals its store identifier.
func SeedAgents() []models.Agent {
	agents := make([]models.Agent, 0, len(demoAgents))
	for _, a := range demoAgents {
		store := storeByID(a.storeID)
		agents = append(agents, models.Agent{
			AgentID:   a.storeID,
			Name:      a.name,
			StoreID:   a.storeID,
			StoreName: store.Name,
			Coins:     a.coins,
			IsActive:  true,
			IsOnline:  true,
		})
	}
	return agents
}

func storeByID(storeID string) models.Store {
	for _, s := range demoStores {
		if s.StoreID == storeID {
			return s
		}
	}
	return models.Store{}
}
