package domain

// Dropdown reference data served to the dashboard. These values must stay
// consistent with the categories the pipeline was fit on: the one-hot
// encoder silently zero-encodes anything it never saw, it does not reject.
var (
	CropCategories = []string{"Cereals", "Vegetables", "Fruits", "Pulses", "Spices"}

	CropTypesByCategory = map[string][]string{
		"Cereals":    {"Rice", "Wheat", "Maize", "Barley", "Oats"},
		"Vegetables": {"Tomato", "Potato", "Onion", "Spinach", "Carrot", "Cabbage"},
		"Fruits":     {"Apple", "Banana", "Grapes", "Mango", "Orange", "Pomegranate"},
		"Pulses":     {"Lentil", "Chickpea", "Mung Bean", "Pigeon Pea", "Black Gram"},
		"Spices":     {"Turmeric", "Cumin", "Cardamom", "Black Pepper", "Cinnamon"},
	}

	Countries = []string{"India", "USA", "China", "Brazil", "Australia", "Canada"}

	StatesByCountry = map[string][]string{
		"India":     {"Karnataka", "Maharashtra", "Uttar Pradesh", "Punjab", "Gujarat", "Tamil Nadu", "Rajasthan", "Madhya Pradesh"},
		"USA":       {"California", "Texas", "Florida", "Iowa", "Kansas", "Idaho", "Washington", "New York"},
		"China":     {"Henan", "Shandong", "Sichuan", "Heilongjiang", "Hunan"},
		"Brazil":    {"Mato Grosso", "Parana", "Minas Gerais", "Rio Grande do Sul", "Sao Paulo"},
		"Australia": {"New South Wales", "Victoria", "Queensland", "Western Australia", "South Australia"},
		"Canada":    {"Ontario", "Saskatchewan", "Alberta", "Manitoba"},
	}

	Seasons = []string{"Kharif (Monsoon)", "Rabi (Winter)", "Zaid (Summer)", "Spring", "Autumn", "Winter"}
)

// categoryByCrop is the inverted CropTypesByCategory lookup.
var categoryByCrop = func() map[string]string {
	m := map[string]string{}
	for category, crops := range CropTypesByCategory {
		for _, crop := range crops {
			m[crop] = category
		}
	}
	return m
}()

// CategoryForCrop returns the crop's category, or the placeholder for crops
// outside the known set.
func CategoryForCrop(cropType string) string {
	if c, ok := categoryByCrop[cropType]; ok {
		return c
	}
	return PlaceholderCategory
}
