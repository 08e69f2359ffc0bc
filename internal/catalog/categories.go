package catalog

// defaultCategories mirrors the host's built-in category labels.
var defaultCategories = map[int]string{
	-2:  "Gem",
	-4:  "Fish",
	-5:  "Animal Product",
	-6:  "Animal Product",
	-7:  "Cooking",
	-8:  "Crafting",
	-12: "Mineral",
	-14: "Meat",
	-15: "Resource",
	-16: "Resource",
	-18: "Animal Product",
	-19: "Fertilizer",
	-20: "Trash",
	-21: "Bait",
	-22: "Fishing Tackle",
	-24: "Decor",
	-25: "Cooking",
	-26: "Artisan Goods",
	-27: "Artisan Goods",
	-28: "Monster Loot",
	-74: "Seed",
	-75: "Vegetable",
	-79: "Fruit",
	-80: "Flower",
	-81: "Forage",
}
