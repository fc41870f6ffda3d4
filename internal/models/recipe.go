package models

// Recipe represents a single recipe owned by one user.
// JSON field names follow the mobile client's contract, including imageUri.
type Recipe struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURI    string `json:"imageUri"`
}

// RecipeDocument is the per-user collection document: recipe id -> record.
// The id lives in the map key; stored records do not persist it redundantly.
type RecipeDocument map[string]Recipe
