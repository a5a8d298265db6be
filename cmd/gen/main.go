package main

import (
	"costbook/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SupplierModel{},
		model.IngredientModel{},
		model.ProductModel{},
		model.RecipeModel{},
		model.RecipeItemModel{},
		model.RecipeVersionModel{},
		model.RecipeItemVersionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
