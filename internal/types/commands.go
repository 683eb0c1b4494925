package types

// Commands crossing into the store layer. Syntax validation (length, shape)
// happens at the HTTP boundary; stores only enforce data-model invariants.

type CreateRecipeCommand struct {
	Title   string
	Content string
}

type UpdateRecipeCommand struct {
	Title   string
	Content string
}

type UpsertPreferencesCommand struct {
	DietType             string
	ForbiddenIngredients []string
}
