package models

// MaxCategories is the most categories Shutterstock allows per image.
const MaxCategories = 2

// ShutterstockCategories is the fixed Shutterstock category taxonomy.
var ShutterstockCategories = []string{
	"Religion", "Science", "Signs/Symbols", "Sports/Recreation", "Technology", "Transportation", "Vintage",
	"Abstract", "Animals/Wildlife", "Arts", "Backgrounds/Textures", "Beauty/Fashion", "Buildings/Landmarks",
	"Business/Finance", "Celebrities", "Education", "Food and drink", "Healthcare/Medical", "Holidays",
	"Industrial", "Interiors", "Miscellaneous", "Nature", "Objects", "Parks/Outdoor", "People",
}

// AdobeStockCategories is the fixed Adobe Stock category taxonomy.
// Adobe identifies categories by their 1-based position in this list.
var AdobeStockCategories = []string{
	"Animals", "Buildings and Architecture", "Business", "Drinks", "The Environment", "States of Mind",
	"Food", "Graphic Resources", "Hobbies and Leisure", "Industry", "Landscapes", "Lifestyle", "People",
	"Plants and Flowers", "Culture and Religion", "Science", "Social Issues", "Sports", "Technology",
	"Transport", "Travel",
}

// IsShutterstockCategory reports whether name is a valid Shutterstock category.
func IsShutterstockCategory(name string) bool {
	for _, c := range ShutterstockCategories {
		if c == name {
			return true
		}
	}
	return false
}

// AdobeCategoryID returns the 1-based Adobe Stock category id for name,
// or 0 if the name is not in the taxonomy.
func AdobeCategoryID(name string) int {
	for i, c := range AdobeStockCategories {
		if c == name {
			return i + 1
		}
	}
	return 0
}
