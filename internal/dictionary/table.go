package dictionary

import (
	"fmt"

	"github.com/spf13/viper"
)

// Rule maps a Vietnamese substring to its English replacement
type Rule struct {
	Pattern     string `mapstructure:"pattern"`
	Replacement string `mapstructure:"replacement"`
}

// Table is an ordered list of rules. Order only breaks ties between
// patterns of equal length.
type Table []Rule

// DefaultTable returns the built-in grocery vocabulary
func DefaultTable() Table {
	return Table{
		// Fruits
		{"Dưa Hấu", "Watermelon"},
		{"Dưa Hấu Đỏ", "Red Watermelon"},
		{"Chuối", "Banana"},
		{"Táo", "Apple"},
		{"Cam", "Orange"},
		{"Nho", "Grape"},
		{"Xoài", "Mango"},
		{"Dứa", "Pineapple"},
		{"Dâu", "Strawberry"},

		// Vegetables
		{"Cà chua", "Tomato"},
		{"Hành tây", "Onion"},
		{"Hành lá", "Green Onion"},
		{"Tỏi", "Garlic"},
		{"Gừng", "Ginger"},
		{"Khoai tây", "Potato"},
		{"Cà rốt", "Carrot"},
		{"Bắp cải", "Cabbage"},
		{"Rau muống", "Water Spinach"},
		{"Rau cải", "Chinese Cabbage"},
		{"Rau xà lách", "Lettuce"},
		{"Cà tím", "Eggplant"},
		{"Ớt", "Chili Pepper"},
		{"Dưa chuột", "Cucumber"},
		{"Bí đỏ", "Pumpkin"},

		// Meat & protein
		{"Thịt heo", "Pork"},
		{"Thịt bò", "Beef"},
		{"Thịt gà", "Chicken"},
		{"Cá", "Fish"},
		{"Tôm", "Shrimp"},
		{"Cua", "Crab"},
		{"Trứng", "Egg"},
		{"Mỡ heo", "Pork Fat"},
		{"Chả", "Vietnamese Sausage"},
		{"Nem", "Spring Roll"},
		{"Chả cốm", "Fried Rice Cake"},

		// Dairy
		{"Sữa", "Milk"},
		{"Sữa tươi", "Fresh Milk"},
		{"Sữa chua", "Yogurt"},
		{"Phô mai", "Cheese"},
		{"Bơ", "Butter"},
		{"Kem", "Ice Cream"},

		// Grains
		{"Gạo", "Rice"},
		{"Bún", "Rice Noodles"},
		{"Mì", "Noodles"},
		{"Bánh mì", "Bread"},
		{"Bánh", "Cake"},
		{"Cháo", "Porridge"},
		{"Ngũ cốc", "Cereal"},

		// Beverages
		{"Nước", "Water"},
		{"Nước ngọt", "Soft Drink"},
		{"Cà phê", "Coffee"},
		{"Trà", "Tea"},
		{"Nước cam", "Orange Juice"},
		{"Bia", "Beer"},
		{"Rượu", "Wine"},

		// Spices & seasoning
		{"Muối", "Salt"},
		{"Đường", "Sugar"},
		{"Tiêu", "Pepper"},
		{"Bột ngọt", "MSG"},
		{"Nước mắm", "Fish Sauce"},
		{"Dầu ăn", "Cooking Oil"},
		{"Tương ớt", "Chili Sauce"},
		{"Tương cà", "Ketchup"},

		// Snacks & sweets
		{"Kẹo", "Candy"},
		{"Bánh kẹo", "Confectionery"},
		{"Bánh quy", "Cookie"},
		{"Bánh ngọt", "Sweet Cake"},
		{"Khoai chiên", "French Fries"},

		// Household
		{"Khăn giấy", "Tissue Paper"},
		{"Xà phòng", "Soap"},
		{"Dầu gội", "Shampoo"},
		{"Kem đánh răng", "Toothpaste"},
		{"Bàn chải", "Toothbrush"},

		// Descriptors and units
		{"Đông lạnh", "Frozen"},
		{"Tươi", "Fresh"},
		{"Khô", "Dried"},
		{"Đóng hộp", "Canned"},
		{"Gói", "Package"},
		{"Khay", "Tray"},
		{"Chai", "Bottle"},
		{"Lon", "Can"},
		{"Túi", "Bag"},
		{"Hộp", "Box"},
		{"Size", "Size"},
		{"kg", "kg"},
		{"g", "g"},
		{"ml", "ml"},
		{"l", "l"},

		// Brands, kept as is
		{"CP", "CP"},
		{"Vĩnh Tân", "Vinh Tan"},
		{"Muwono", "Muwono"},
		{"Gấu Đỏ", "Red Bear"},
		{"Ngon Ngon", "Ngon Ngon"},

		// Special terms and colours
		{"XẢ TỒN", "CLEARANCE"},
		{"Miền Tây", "Mekong Delta"},
		{"Baby", "Baby"},
		{"TQ", "Chinese"},
		{"Đỏ", "Red"},
		{"Trắng", "White"},
		{"Xanh", "Green"},
		{"Vàng", "Yellow"},
		{"Nâu", "Brown"},
		{"Đen", "Black"},
	}
}

// LoadTable reads extra rules from a YAML, JSON or TOML file with a
// top-level "rules" list of {pattern, replacement} entries.
func LoadTable(path string) (Table, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	var table Table
	if err := v.UnmarshalKey("rules", &table); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary rules: %w", err)
	}

	for i, rule := range table {
		if rule.Pattern == "" {
			return nil, fmt.Errorf("dictionary rule %d has an empty pattern", i+1)
		}
	}

	return table, nil
}

// Merge puts extra in front of base, so extra wins on duplicate patterns
func Merge(extra, base Table) Table {
	out := make(Table, 0, len(extra)+len(base))
	out = append(out, extra...)
	return append(out, base...)
}
