package entities

// ReferentialAction declares what happens to a dependent relation when the
// referenced row is deleted. The schema mixes strategies (recipe→user is
// SET NULL, category↔ingredient needs application-level reassignment), so the
// delete paths dispatch on this metadata instead of assuming one uniform
// behavior.
type ReferentialAction int

const (
	// Cascade: the store removes dependent rows itself.
	Cascade ReferentialAction = iota
	// SetNull: the store nulls out the reference.
	SetNull
	// Restrict: deletion must be refused while dependents exist.
	Restrict
	// ApplicationManaged: the service layer handles dependents before the
	// referenced row may go away.
	ApplicationManaged
)

type Relation struct {
	Table      string
	References string
	OnDelete   ReferentialAction
}

var relations = []Relation{
	{Table: "recipes", References: "users", OnDelete: SetNull},
	{Table: "ingredient_categories", References: "categories", OnDelete: ApplicationManaged},
	{Table: "ingredient_categories", References: "ingredients", OnDelete: ApplicationManaged},
	{Table: "recipe_ingredients", References: "recipes", OnDelete: ApplicationManaged},
	{Table: "recipe_ingredients", References: "ingredients", OnDelete: Cascade},
	{Table: "user_recipes", References: "recipes", OnDelete: Restrict},
	{Table: "user_recipe_ingredients", References: "user_recipes", OnDelete: ApplicationManaged},
}

// PolicyFor returns the declared delete behavior for the relation from table
// to the referenced table. Unknown relations default to Restrict, the safest
// interpretation.
func PolicyFor(table, references string) ReferentialAction {
	for _, r := range relations {
		if r.Table == table && r.References == references {
			return r.OnDelete
		}
	}
	return Restrict
}
