package models

// Category is one entry of the fixed category set activities are tagged with.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// FallbackCategoryID is used when a goal carries no category filter.
const FallbackCategoryID = "personal"

// DefaultCategories is the fixed category set.
var DefaultCategories = []Category{
	{ID: "work", Name: "Work", Color: "blue"},
	{ID: "personal", Name: "Personal", Color: "purple"},
	{ID: "health", Name: "Health", Color: "green"},
	{ID: "meals", Name: "Meals", Color: "orange"},
	{ID: "commute", Name: "Commute", Color: "gray"},
	{ID: "projects", Name: "Projects", Color: "teal"},
	{ID: "learning", Name: "Learning", Color: "indigo"},
	{ID: "rest", Name: "Rest", Color: "pink"},
}

// CategoryByID looks up a category in the fixed set.
func CategoryByID(id string) (Category, bool) {
	for _, c := range DefaultCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
