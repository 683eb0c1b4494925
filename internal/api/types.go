package api

// Request bodies. Shape validation happens here so the stores only ever see
// well-formed commands.

type createRecipeRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

type updateRecipeRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

type upsertPreferencesRequest struct {
	DietType             string   `json:"diet_type" binding:"required,oneof=vegan vegetarian none"`
	ForbiddenIngredients []string `json:"forbidden_ingredients" binding:"omitempty,dive,max=100"`
}
